// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel is the Bubble Tea model for the unlock and install screens.
// Both render the same login/password form; install additionally creates the
// vault's first master key instead of verifying an existing one. On success
// an [UnlockNotice] is delivered to the menu page.
type UnlockModel struct {
	ctx     context.Context
	vault   service.VaultClientService
	install bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewUnlockModel creates an [UnlockModel] with pre-configured login and
// password inputs. The password field uses masked echo.
func NewUnlockModel(ctx context.Context, vault service.VaultClientService, install bool) *UnlockModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "login"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &UnlockModel{
		ctx:     ctx,
		vault:   vault,
		install: install,
		inputs:  []textinput.Model{loginInput, passwordInput},
	}
}

func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(unlockDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeServerUnavailableError(result.err)
			return m, nil
		}

		if result.status == models.StatusValid {
			setSessionLogin(result.login)
		}
		m.inputs[1].SetValue("")
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: UnlockNotice{Login: result.login, Status: result.status}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
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
			pass := m.inputs[1].Value()
			if login == "" || pass == "" {
				m.errMsg = "Логин и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(login, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	action := "Разблокировать"
	if m.install {
		action = "Установить"
	}
	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "РАЗБЛОКИРОВКА"
	if m.install {
		title = "УСТАНОВКА МАСТЕР-КЛЮЧА"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *UnlockModel) cmdSubmit(login, pass string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	install := m.install

	return func() tea.Msg {
		if install {
			if err := vault.Install(ctx, login, pass); err != nil {
				return unlockDoneMsg{login: login, install: true, err: err}
			}
			return unlockDoneMsg{login: login, install: true, status: models.StatusValid}
		}

		status, err := vault.Unlock(ctx, login, pass)
		return unlockDoneMsg{login: login, status: status, err: err}
	}
}

func (m *UnlockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *UnlockModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
