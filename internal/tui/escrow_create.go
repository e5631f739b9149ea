// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EscrowCreateModel mints a temporary escrow of the master key. The escrow
// key is shown exactly once; the model offers a clipboard copy and drops the
// key from memory when the page is left.
type EscrowCreateModel struct {
	ctx   context.Context
	vault service.VaultClientService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	created   bool
	escrowKey string
	expiresAt time.Time
	copied    bool
}

func NewEscrowCreateModel(ctx context.Context, vault service.VaultClientService) *EscrowCreateModel {
	labels := []struct {
		placeholder string
		masked      bool
	}{
		{placeholder: "login"},
		{placeholder: "master password", masked: true},
		{placeholder: "24h (пусто = по умолчанию)"},
		{placeholder: "ops@example.com, second@example.com"},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = l.placeholder
		inputs[i].Width = 44
		if l.masked {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	inputs[0].Focus()

	return &EscrowCreateModel{ctx: ctx, vault: vault, inputs: inputs}
}

func (m *EscrowCreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EscrowCreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case escrowCreatedMsg:
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.created = true
		m.escrowKey = result.resp.EscrowKey
		m.expiresAt = result.resp.ExpiresAt
		m.inputs[1].SetValue("")
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
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if m.created {
		switch keyMsg.String() {
		case "c":
			return m, cmdCopyToClipboard(m.escrowKey)
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
	case "tab":
		m.focusNext()
		return m, nil
	case "shift+tab":
		m.focusPrev()
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}

		login := strings.TrimSpace(m.inputs[0].Value())
		pass := m.inputs[1].Value()
		if login == "" || pass == "" {
			m.errMsg = "Логин и пароль обязательны"
			return m, nil
		}

		var validity time.Duration
		if raw := strings.TrimSpace(m.inputs[2].Value()); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil || parsed <= 0 {
				m.errMsg = "Срок действия должен быть положительной длительностью, например 24h"
				return m, nil
			}
			validity = parsed
		}

		recipients := splitRecipients(m.inputs[3].Value())

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdCreate(login, pass, validity, recipients)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *EscrowCreateModel) View() string {
	if m.created {
		var b strings.Builder
		b.WriteString("Эскроу-ключ (показывается один раз):\n\n")
		b.WriteString("  " + m.escrowKey + "\n\n")
		b.WriteString("Действует до: " + m.expiresAt.Format(time.RFC3339) + "\n")
		if m.copied {
			b.WriteString("\nOK: скопировано в буфер обмена\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
			b.WriteString("\n")
		}
		return renderPage("ЭСКРОУ СОЗДАН", strings.TrimRight(b.String(), "\n"), "c: копировать │ esc: в меню")
	}

	var b strings.Builder
	b.WriteString("Поле       │ Значение\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин      │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Пароль     │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Срок       │ [" + m.inputs[2].View() + "]\n")
	b.WriteString("Получатели │ [" + m.inputs[3].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Создать...]\n")
	} else {
		b.WriteString("\n[Создать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("СОЗДАНИЕ ЭСКРОУ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: создать")
}

func (m *EscrowCreateModel) cmdCreate(login, pass string, validity time.Duration, recipients []string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		resp, err := vault.CreateEscrow(ctx, login, pass, validity, recipients)
		return escrowCreatedMsg{resp: resp, err: err}
	}
}

func (m *EscrowCreateModel) reset() {
	m.created = false
	m.escrowKey = ""
	m.expiresAt = time.Time{}
	m.copied = false
	m.errMsg = ""
	m.submitting = false
	m.inputs[1].SetValue("")
}

func (m *EscrowCreateModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *EscrowCreateModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func splitRecipients(raw string) []string {
	var recipients []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
