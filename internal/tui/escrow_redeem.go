// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EscrowRedeemModel exchanges an escrow key for the master key. The recovered
// key is held only until the page is left and is zeroed on the way out.
type EscrowRedeemModel struct {
	ctx   context.Context
	vault service.VaultClientService

	input      textinput.Model
	submitting bool
	errMsg     string

	masterKey []byte
	copied    bool
}

func NewEscrowRedeemModel(ctx context.Context, vault service.VaultClientService) *EscrowRedeemModel {
	input := textinput.New()
	input.Placeholder = "эскроу-ключ"
	input.Width = 60
	input.Focus()

	return &EscrowRedeemModel{ctx: ctx, vault: vault, input: input}
}

func (m *EscrowRedeemModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EscrowRedeemModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case escrowRedeemedMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.masterKey = result.masterKey
		m.input.SetValue("")
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.copied = true
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.masterKey != nil {
		switch keyMsg.String() {
		case "c":
			return m, cmdCopyToClipboard(base64.StdEncoding.EncodeToString(m.masterKey))
		case "esc", "enter":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "enter":
		if m.submitting {
			return m, nil
		}

		candidate := strings.TrimSpace(m.input.Value())
		if candidate == "" {
			m.errMsg = "Эскроу-ключ обязателен"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdRedeem(candidate)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *EscrowRedeemModel) View() string {
	if m.masterKey != nil {
		var b strings.Builder
		b.WriteString("Мастер-ключ восстановлен (base64):\n\n")
		b.WriteString("  " + base64.StdEncoding.EncodeToString(m.masterKey) + "\n")
		if m.copied {
			b.WriteString("\nOK: скопировано в буфер обмена\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
			b.WriteString("\n")
		}
		return renderPage("ЭСКРОУ ПОГАШЕН", strings.TrimRight(b.String(), "\n"), "c: копировать │ esc: в меню")
	}

	var b strings.Builder
	b.WriteString("Эскроу-ключ │ [" + m.input.View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Погасить...]\n")
	} else {
		b.WriteString("\n[Погасить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ПОГАШЕНИЕ ЭСКРОУ", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: погасить")
}

func (m *EscrowRedeemModel) cmdRedeem(candidate string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		masterKey, err := vault.RedeemEscrow(ctx, candidate)
		return escrowRedeemedMsg{masterKey: masterKey, err: err}
	}
}

func (m *EscrowRedeemModel) reset() {
	for i := range m.masterKey {
		m.masterKey[i] = 0
	}
	m.masterKey = nil
	m.copied = false
	m.errMsg = ""
	m.submitting = false
	m.input.SetValue("")
}
