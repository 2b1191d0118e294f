// Package tui implements the interactive terminal interface.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/stats"
	"github.com/Veraticus/tally/internal/tui/components"
	"github.com/Veraticus/tally/internal/tui/themes"
	"github.com/Veraticus/tally/internal/view"
)

// State represents the current screen of the TUI.
type State int

const (
	StateList State = iota
	StateAdding
	StateHelp
)

// Model holds the main TUI state.
type Model struct {
	ctx             context.Context
	repo            Ledger
	selector        *view.Selector
	theme           themes.Theme
	lastError       error
	config          Config
	keymap          KeyMap
	help            help.Model
	status          string
	current         view.State
	transactionList components.TransactionListModel
	statsPanel      components.StatsPanelModel
	form            components.AddFormModel
	state           State
	width           int
	height          int
	quitting        bool
}

// New creates the UI model on top of repo.
func New(ctx context.Context, repo Ledger, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	selector := view.NewSelector()
	selector.SetActive(cfg.InitialView)

	m := Model{
		ctx:             ctx,
		repo:            repo,
		selector:        selector,
		theme:           cfg.Theme,
		config:          cfg,
		keymap:          DefaultKeyMap(),
		help:            help.New(),
		transactionList: components.NewTransactionList(cfg.Theme),
		statsPanel:      components.NewStatsPanelModel(cfg.Theme),
		state:           StateList,
		width:           cfg.Width,
		height:          cfg.Height,
	}
	m.handleResize()
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case ledgerChangedMsg:
		m.status = msg.status
		m.lastError = nil
		if m.state == StateAdding {
			m.state = StateList
		}
		m.refresh()
		return m, nil

	case addFailedMsg:
		if m.state == StateAdding {
			m.form.SetError(msg.err)
		} else {
			m.lastError = msg.err
		}
		return m, nil

	case errorMsg:
		m.lastError = msg.err
		return m, nil

	case components.FormSubmittedMsg:
		return m, m.addTransaction(msg.Input, msg.View)

	case components.FormCancelledMsg:
		m.state = StateList
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case StateAdding:
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		case StateHelp:
			if key.Matches(msg, m.keymap.Quit) {
				m.quitting = true
				return m, tea.Quit
			}
			m.state = StateList
			return m, nil
		default:
			return m.handleListKeys(msg)
		}
	}

	if m.state == StateAdding {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.Personal):
		m.switchView(model.ViewPersonal)
		return m, nil

	case key.Matches(msg, m.keymap.Company):
		m.switchView(model.ViewCompany)
		return m, nil

	case key.Matches(msg, m.keymap.Income):
		m.switchView(model.ViewIncome)
		return m, nil

	case key.Matches(msg, m.keymap.NextView):
		m.switchView(nextView(m.selector.Active()))
		return m, nil

	case key.Matches(msg, m.keymap.Add):
		m.form = components.NewAddForm(m.theme, m.selector.Active(), model.DateOf(m.config.Now()))
		m.state = StateAdding
		m.lastError = nil
		return m, m.form.Init()

	case key.Matches(msg, m.keymap.Delete):
		if txn, ok := m.transactionList.Selected(); ok {
			return m, m.deleteTransaction(txn)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Reimburse):
		if txn, ok := m.transactionList.Selected(); ok {
			if e, isExpense := txn.(model.Expense); isExpense {
				return m, m.toggleReimbursed(e)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.transactionList, cmd = m.transactionList.Update(msg)
	return m, cmd
}

// ActiveView returns the view currently shown.
func (m Model) ActiveView() model.View {
	return m.selector.Active()
}

// CurrentState returns what the active view shows.
func (m Model) CurrentState() view.State {
	return m.current
}

func (m *Model) switchView(v model.View) {
	m.selector.SetActive(v)
	m.status = ""
	m.lastError = nil
	m.refresh()
}

// refresh re-derives the visible list and the monthly stats from the ledger.
func (m *Model) refresh() {
	v := m.selector.Active()
	m.current = view.Snapshot(m.repo, v)
	m.transactionList.SetTransactions(v, m.current.Transactions)

	summary := stats.Aggregate(m.current.Transactions, m.current.Categories, stats.CurrentMonth(m.config.Now()))
	m.statsPanel.SetSummary(v, summary)
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	m.help.Width = m.width
	if m.width >= 120 {
		m.transactionList.Resize(m.width*3/5, m.height-8)
		m.statsPanel.Resize(m.width*2/5 - 4)
		return
	}
	m.transactionList.Resize(m.width-2, (m.height-8)/2)
	m.statsPanel.Resize(m.width - 2)
}

func nextView(v model.View) model.View {
	for i, candidate := range model.Views {
		if candidate == v {
			return model.Views[(i+1)%len(model.Views)]
		}
	}
	return model.ViewPersonal
}
