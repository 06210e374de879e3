// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dating-client/internal/logger"
)

// restyLogger routes resty's internal diagnostics into the client log
// instead of stderr.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("source", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("source", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("source", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
