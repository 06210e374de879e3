// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-dating-client/internal/logger"
)

// DefaultRefreshInterval is used by Start for non-positive intervals.
const DefaultRefreshInterval = time.Minute

type clientRefreshJob struct {
	auth     ClientAuthService
	chat     ClientChatService
	settings ClientSettingsService
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that reloads matches and the Telegram
// status on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(auth ClientAuthService, chat ClientChatService, settings ClientSettingsService, log *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{
		auth:     auth,
		chat:     chat,
		settings: settings,
		logger:   log.WithComponent("refresh-job"),
	}
}

// Start implements ClientRefreshJob. Ticks are skipped while no user is
// logged in. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientRefreshJob) refresh(ctx context.Context) {
	if !j.auth.IsAuthenticated() {
		return
	}

	if err := j.chat.LoadMatches(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("failed to refresh matches")
	}
	if _, err := j.settings.CheckTelegramStatus(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("failed to refresh telegram status")
	}
}
