// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dating-client/internal/client"
	"github.com/MKhiriev/go-dating-client/internal/config"
	"github.com/MKhiriev/go-dating-client/internal/logger"
	"github.com/MKhiriev/go-dating-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("dating-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("dating-client", cfg.Log.File, cfg.Log.Level)
	log.Debug().
		Str("api_url", cfg.Adapter.HTTPAddress).
		Str("ws_url", cfg.Stream.URL).
		Str("db", cfg.Storage.DB.DSN).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
