package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title     string
	page      string
	needsAuth bool
}

type MenuModel struct {
	vault service.VaultClientService

	items  []menuItem
	idx    int
	status string
	errMsg string
}

func NewMenuModel(vault service.VaultClientService) *MenuModel {
	return &MenuModel{
		vault: vault,
		items: []menuItem{
			{title: "Разблокировать мастер-ключ", page: "unlock"},
			{title: "Установить мастер-ключ", page: "install"},
			{title: "Создать эскроу-ключ", page: "escrow-create", needsAuth: true},
			{title: "Погасить эскроу-ключ", page: "escrow-redeem"},
			{title: "Отозвать эскроу", page: "escrow-expire", needsAuth: true},
			{title: "Ротация мастер-пароля", page: "rotate", needsAuth: true},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(UnlockNotice); ok {
		m.errMsg = ""
		switch notice.Status {
		case models.StatusValid:
			m.status = "Мастер-ключ разблокирован для " + notice.Login
		case models.StatusNotSet:
			m.status = "Мастер-ключ еще не установлен"
		case models.StatusChanged:
			m.status = "Мастер-пароль был изменен, требуется актуальный пароль"
		case models.StatusWrong:
			m.status = "Неверный мастер-пароль"
		default:
			m.status = string(notice.Status)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		m.errMsg = ""
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		m.errMsg = ""
	case key.Matches(keyMsg, keys.enter):
		item := m.items[m.idx]
		if item.needsAuth && !m.vault.Authenticated() {
			m.errMsg = "Сначала разблокируйте мастер-ключ"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: item.page} }
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}

	actionColWidth := lipgloss.Width("Действие")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-4s │ %-*s\n", "ID", actionColWidth, "Действие"))
	b.WriteString(strings.Repeat("─", 4))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		title := item.title
		if item.needsAuth && !m.vault.Authenticated() {
			title += " *"
		}
		b.WriteString(fmt.Sprintf("%s %-2d │ %-*s\n", cursor, i+1, actionColWidth, title))
	}

	hint := "* требуется разблокировка"
	if login := getSessionLogin(); login != "" && m.vault.Authenticated() {
		hint = "Авторизован как " + login
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hint))

	return renderPage("GO KEY VAULT", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия │ q: выход")
}
