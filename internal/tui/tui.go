package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	vault service.VaultClientService
}

func New(vault service.VaultClientService, _ *logger.Logger) (*TUI, error) {
	return &TUI{vault: vault}, nil
}

// Run drives the whole vaultctl session inside a single Bubble Tea program.
func (t *TUI) Run(ctx context.Context, buildInfo models.AppBuildInfo) error {
	pages := map[string]tea.Model{
		"menu":          NewMenuModel(t.vault),
		"unlock":        NewUnlockModel(ctx, t.vault, false),
		"install":       NewUnlockModel(ctx, t.vault, true),
		"escrow-create": NewEscrowCreateModel(ctx, t.vault),
		"escrow-redeem": NewEscrowRedeemModel(ctx, t.vault),
		"escrow-expire": NewEscrowExpireModel(ctx, t.vault),
		"rotate":        NewRotateModel(ctx, t.vault),
	}

	root := NewRootModel(pages, "menu", buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
