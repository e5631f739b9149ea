package workers

import (
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the server process.
func NewWorkers(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newVaultJanitor(
				storages.SessionVaultStore,
				cfg.Storage.Cache.ExpireTime,
				cfg.Workers.JanitorInterval,
				logger,
			),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
