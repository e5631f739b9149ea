package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/adapter"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/tui"
	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
)

type App struct {
	vault     service.VaultClientService
	tui       *tui.TUI
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewApp wires the vaultctl process: transport adapter, client service, and
// terminal UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	vault := service.NewVaultClientService(serverAdapter, validators.NewRequestValidator(), log)

	ui, err := tui.New(vault, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{vault: vault, tui: ui, buildInfo: buildInfo, logger: log}, nil
}

// Run starts the terminal UI and blocks until the user leaves it.
func (a *App) Run() error {
	err := a.tui.Run(context.Background(), a.buildInfo)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Debug().Msg("user quit")
		return nil
	}

	return err
}
