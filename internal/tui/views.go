package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tally/internal/model"
)

var viewTitles = map[model.View]string{
	model.ViewPersonal: "Personal",
	model.ViewCompany:  "Company",
	model.ViewIncome:   "Income",
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderBody(),
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	active := m.selector.Active()

	tabs := make([]string, 0, len(model.Views))
	for i, v := range model.Views {
		label := string(rune('1'+i)) + " " + viewTitles[v]
		if v == active {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}

	title := m.theme.Title.UnsetMargins().Render("🧾 tally")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
	)
}

func (m Model) renderBody() string {
	switch m.state {
	case StateHelp:
		return m.theme.RoundedBox.Render(m.help.FullHelpView(m.keymap.FullHelp()))
	case StateAdding:
		return m.form.View()
	}

	list := m.transactionList.View()
	panel := m.theme.RoundedBox.Render(m.statsPanel.View())

	if m.width >= 120 {
		return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, "", panel)
}

func (m Model) renderStatusBar() string {
	var parts []string
	switch {
	case m.lastError != nil:
		parts = append(parts, m.theme.StatusError.Render("✗ "+m.lastError.Error()))
	case m.status != "":
		parts = append(parts, m.theme.StatusSuccess.Render("✓ "+m.status))
	}

	if m.state == StateList {
		parts = append(parts, m.help.ShortHelpView(m.keymap.ShortHelp()))
	}

	return "\n" + strings.Join(parts, "\n")
}
