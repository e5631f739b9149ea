// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// EscrowExpireModel is a confirm prompt for revoking the active escrow.
type EscrowExpireModel struct {
	ctx   context.Context
	vault service.VaultClientService

	submitting bool
	done       bool
	errMsg     string
}

func NewEscrowExpireModel(ctx context.Context, vault service.VaultClientService) *EscrowExpireModel {
	return &EscrowExpireModel{ctx: ctx, vault: vault}
}

func (m *EscrowExpireModel) Init() tea.Cmd {
	m.done = false
	m.errMsg = ""
	return nil
}

func (m *EscrowExpireModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(escrowExpiredMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.done = true
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.done {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
			m.done = false
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		if m.submitting {
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdExpire()
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	return m, nil
}

func (m *EscrowExpireModel) View() string {
	var b strings.Builder

	if m.done {
		b.WriteString("OK: эскроу отозван\n")
		return renderPage("ОТЗЫВ ЭСКРОУ", strings.TrimRight(b.String(), "\n"), "esc: в меню")
	}

	if m.submitting {
		b.WriteString("Отзываем эскроу...\n")
	} else {
		b.WriteString("Отозвать активный эскроу-ключ?\n")
		b.WriteString("Погасить его после отзыва будет невозможно.\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ОТЗЫВ ЭСКРОУ", strings.TrimRight(b.String(), "\n"), "y: отозвать │ n/esc: отмена")
}

func (m *EscrowExpireModel) cmdExpire() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return escrowExpiredMsg{err: vault.ExpireEscrow(ctx)}
	}
}
