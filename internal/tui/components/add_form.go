package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/tui/themes"
)

// Form fields in tab order.
const (
	FieldAmount = iota
	FieldCategory
	FieldDate
	FieldDescription
	fieldCount
)

var fieldNames = [fieldCount]string{"amount", "category", "date", "description"}

var fieldLabels = [fieldCount]string{"Amount", "Category", "Date", "Description"}

// FormSubmittedMsg is sent when the user confirms the form.
type FormSubmittedMsg struct {
	Input ledger.Input
	View  model.View
}

// FormCancelledMsg is sent when the user leaves the form without saving.
type FormCancelledMsg struct{}

// AddFormModel collects the fields of a new transaction.
type AddFormModel struct {
	theme      themes.Theme
	err        error
	view       model.View
	categories []model.Category
	inputs     [fieldCount]textinput.Model
	focus      int
}

// NewAddForm creates a form for v with the date prefilled to today.
func NewAddForm(theme themes.Theme, v model.View, today model.Date) AddFormModel {
	m := AddFormModel{
		theme:      theme,
		view:       v,
		categories: categories.ForView(v),
	}

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		m.inputs[i] = in
	}

	m.inputs[FieldAmount].Placeholder = "0.00"
	m.inputs[FieldAmount].CharLimit = 20
	m.inputs[FieldCategory].Placeholder = m.categories[0].ID
	m.inputs[FieldCategory].SetValue(m.categories[0].ID)
	m.inputs[FieldDate].Placeholder = model.DateLayout
	m.inputs[FieldDate].CharLimit = len(model.DateLayout)
	m.inputs[FieldDate].SetValue(today.String())
	m.inputs[FieldDescription].Placeholder = "optional"
	m.inputs[FieldDescription].CharLimit = ledger.MaxDescriptionLength

	m.inputs[FieldAmount].Focus()
	return m
}

// Focused returns the index of the field with focus.
func (m AddFormModel) Focused() int {
	return m.focus
}

// Value returns the current text of field.
func (m AddFormModel) Value(field int) string {
	return m.inputs[field].Value()
}

// SetValue replaces the text of field.
func (m *AddFormModel) SetValue(field int, value string) {
	m.inputs[field].SetValue(value)
}

// Input returns the raw form values.
func (m AddFormModel) Input() ledger.Input {
	return ledger.Input{
		Amount:      m.inputs[FieldAmount].Value(),
		Category:    m.inputs[FieldCategory].Value(),
		Date:        m.inputs[FieldDate].Value(),
		Description: m.inputs[FieldDescription].Value(),
	}
}

// Err returns the error shown on the form.
func (m AddFormModel) Err() error {
	return m.err
}

// SetError shows err on the form and focuses the offending field when it is
// a validation error.
func (m *AddFormModel) SetError(err error) {
	m.err = err

	var vErr *common.ValidationError
	if !errors.As(err, &vErr) {
		return
	}
	for i, name := range fieldNames {
		if name == vErr.Field {
			m.setFocus(i)
			return
		}
	}
}

// Init implements tea.Model.
func (m AddFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m AddFormModel) Update(msg tea.Msg) (AddFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return FormCancelledMsg{} }

		case "enter":
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, textinput.Blink
			}
			return m, m.submit()

		case "ctrl+s":
			return m, m.submit()

		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, textinput.Blink

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, textinput.Blink

		case "ctrl+n", "ctrl+p":
			if m.focus == FieldCategory {
				step := 1
				if msg.String() == "ctrl+p" {
					step = len(m.categories) - 1
				}
				m.cycleCategory(step)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m AddFormModel) submit() tea.Cmd {
	in := m.Input()
	v := m.view
	return func() tea.Msg {
		return FormSubmittedMsg{Input: in, View: v}
	}
}

func (m *AddFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// cycleCategory moves the category field step entries through the partition.
func (m *AddFormModel) cycleCategory(step int) {
	current := strings.TrimSpace(m.inputs[FieldCategory].Value())
	idx := -1
	for i, c := range m.categories {
		if c.ID == current {
			idx = i
			break
		}
	}
	next := (idx + step) % len(m.categories)
	if idx < 0 {
		next = 0
	}
	m.inputs[FieldCategory].SetValue(m.categories[next].ID)
	m.inputs[FieldCategory].CursorEnd()
}

// View renders the form.
func (m AddFormModel) View() string {
	title := "New expense"
	switch m.view {
	case model.ViewIncome:
		title = "New income"
	case model.ViewCompany:
		title = "New company purchase"
	}

	lines := []string{m.theme.Bold.Render(title), ""}
	for i := range m.inputs {
		label := m.theme.FieldLabel.Render(fieldLabels[i])
		if i == m.focus {
			label = m.theme.FieldFocused.Render("› " + fieldLabels[i])
		}
		lines = append(lines, label+m.inputs[i].View())

		if i == FieldCategory {
			lines = append(lines, m.theme.FieldLabel.Render("")+m.theme.StatusPending.Render(m.categoryHint()))
		}
	}

	if m.err != nil {
		lines = append(lines, "", m.theme.StatusError.Render(m.err.Error()))
	}
	lines = append(lines, "", m.theme.StatusPending.Render("enter next/save · tab move · ctrl+n/p cycle category · esc cancel"))

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m AddFormModel) categoryHint() string {
	current := strings.TrimSpace(m.inputs[FieldCategory].Value())
	if c, ok := categories.Lookup(m.view, current); ok {
		return fmt.Sprintf("%s %s", c.Icon, c.Name)
	}
	if current == "" {
		return ""
	}
	return "not in this view's categories"
}
