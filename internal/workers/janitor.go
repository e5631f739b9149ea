// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

// vaultJanitor periodically sweeps the session-vault cache directory,
// deleting vault files whose session key already expired. Expired vaults are
// also replaced lazily on access; the janitor only keeps the directory from
// accumulating files for sessions that never come back.
type vaultJanitor struct {
	vaults   store.SessionVaultStore
	ttl      time.Duration
	interval time.Duration

	logger *logger.Logger
}

func newVaultJanitor(vaults store.SessionVaultStore, ttl, interval time.Duration, logger *logger.Logger) *vaultJanitor {
	return &vaultJanitor{
		vaults:   vaults,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. The sweep loop runs in its own goroutine for the
// lifetime of the process.
func (j *vaultJanitor) Run() {
	if j.interval <= 0 {
		j.logger.Warn().Msg("vault janitor disabled: non-positive interval")
		return
	}

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			j.sweep()
		}
	}()
}

func (j *vaultJanitor) sweep() {
	removed, err := j.vaults.Sweep(context.Background(), j.ttl)
	if err != nil {
		j.logger.Err(err).Str("func", "*vaultJanitor.sweep").Msg("session vault sweep failed")
		return
	}

	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("expired session vaults swept")
	}
}
