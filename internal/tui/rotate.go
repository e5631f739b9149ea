// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RotateModel runs a master password rotation and shows the server's
// re-encryption report when it finishes.
type RotateModel struct {
	ctx   context.Context
	vault service.VaultClientService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	report *rotateDoneMsg
}

func NewRotateModel(ctx context.Context, vault service.VaultClientService) *RotateModel {
	labels := []struct {
		placeholder string
		masked      bool
	}{
		{placeholder: "login"},
		{placeholder: "текущий мастер-пароль", masked: true},
		{placeholder: "новый мастер-пароль", masked: true},
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

	return &RotateModel{ctx: ctx, vault: vault, inputs: inputs}
}

func (m *RotateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RotateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(rotateDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}
		m.report = &result
		m.inputs[1].SetValue("")
		m.inputs[2].SetValue("")
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if m.report != nil {
		switch keyMsg.String() {
		case "esc", "enter":
			m.report = nil
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.submitting = false
		m.errMsg = ""
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
		current := m.inputs[1].Value()
		next := m.inputs[2].Value()
		switch {
		case login == "" || current == "":
			m.errMsg = "Логин и текущий пароль обязательны"
			return m, nil
		case next == "":
			m.errMsg = "Новый пароль обязателен"
			return m, nil
		case next == current:
			m.errMsg = "Новый пароль должен отличаться от текущего"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdRotate(login, current, next)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RotateModel) View() string {
	if m.report != nil {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("Перешифровано ключей: %d\n", m.report.report.Succeeded))
		if m.report.report.Failed > 0 {
			b.WriteString(fmt.Sprintf("Ошибок: %d\n", m.report.report.Failed))
		}
		if !m.report.report.RotatedAt.IsZero() {
			b.WriteString("Завершено: " + m.report.report.RotatedAt.Format(time.RFC3339) + "\n")
		}
		b.WriteString("Длительность: " + m.report.took.Round(time.Millisecond).String() + "\n")
		return renderPage("РОТАЦИЯ ЗАВЕРШЕНА", strings.TrimRight(b.String(), "\n"), "esc: в меню")
	}

	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин          │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Текущий пароль │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Новый пароль   │ [" + m.inputs[2].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Ротация... это может занять время]\n")
	} else {
		b.WriteString("\n[Запустить ротацию]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РОТАЦИЯ МАСТЕР-ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: запустить")
}

func (m *RotateModel) cmdRotate(login, current, next string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		started := time.Now()
		report, err := vault.Rotate(ctx, login, current, next)
		return rotateDoneMsg{report: report, took: time.Since(started), err: err}
	}
}

func (m *RotateModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RotateModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
