package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/stats"
	"github.com/Veraticus/tally/internal/tui/themes"
)

const defaultBarWidth = 24

// StatsPanelModel shows the monthly per-category breakdown of the active view.
type StatsPanelModel struct {
	theme    themes.Theme
	view     model.View
	summary  stats.Summary
	width    int
	barWidth int
}

// NewStatsPanelModel creates an empty stats panel.
func NewStatsPanelModel(theme themes.Theme) StatsPanelModel {
	return StatsPanelModel{
		theme:    theme,
		view:     model.ViewPersonal,
		width:    40,
		barWidth: defaultBarWidth,
	}
}

// SetSummary replaces the figures shown.
func (m *StatsPanelModel) SetSummary(v model.View, summary stats.Summary) {
	m.view = v
	m.summary = summary
}

// Summary returns the figures shown.
func (m StatsPanelModel) Summary() stats.Summary {
	return m.summary
}

// Resize sets the panel width.
func (m *StatsPanelModel) Resize(width int) {
	m.width = width
	m.barWidth = min(max(width-30, 8), 40)
}

// View renders the panel.
func (m StatsPanelModel) View() string {
	title := m.theme.Bold.Render(fmt.Sprintf("This month · %s", m.summary.Window.Start.Format("January 2006")))

	if len(m.summary.Totals) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			m.theme.StatusPending.Render("Nothing recorded this month."),
		)
	}

	nameWidth := 0
	for _, row := range m.summary.Totals {
		nameWidth = max(nameWidth, lipgloss.Width(row.Category.Name))
	}

	lines := []string{title}
	for _, row := range m.summary.Totals {
		lines = append(lines, m.renderRow(row, nameWidth))
	}

	lines = append(lines, "",
		m.theme.Bold.Render("Total ")+cli.FormatAmount(m.summary.GrandTotal))
	if m.view.IsExpenseView() && m.summary.Outstanding.IsPositive() {
		lines = append(lines,
			m.theme.Subtitle.Render("Awaiting reimbursement ")+cli.FormatAmount(m.summary.Outstanding))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m StatsPanelModel) renderRow(row stats.CategoryTotal, nameWidth int) string {
	color := m.barColor(row.Category)

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(m.barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = m.theme.ProgressEmpty

	name := row.Category.Name
	if row.Orphan {
		name = m.theme.StatusPending.Render(name)
	}
	pad := strings.Repeat(" ", max(nameWidth-lipgloss.Width(row.Category.Name), 0))

	return fmt.Sprintf("%s%s %s %5.1f%% %s",
		name, pad,
		bar.ViewAs(row.Share),
		row.Share*100,
		cli.FormatAmount(row.Total))
}

// barColor picks the fill for a category bar. Themes without a primary
// color render every bar uncolored.
func (m StatsPanelModel) barColor(c model.Category) string {
	switch {
	case m.theme.Primary == "":
		return ""
	case c.Color == "":
		return string(m.theme.Muted)
	default:
		return c.Color
	}
}
