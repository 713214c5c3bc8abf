// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package bill is the screen hosting the currency fields: an amount, a tip,
// a note and a done button, with a running total underneath.
package bill

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
	"github.com/toeirei/currencyfield/internal/logging"
	"github.com/toeirei/currencyfield/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/currencyfield/ui/tui/models/helpers/form/input"
	windowtitle "github.com/toeirei/currencyfield/ui/tui/models/helpers/title"
	"github.com/toeirei/currencyfield/ui/tui/util"
)

// Bill is the result of the form.
type Bill struct {
	Amount float64 `mapstructure:"amount"`
	Tip    float64 `mapstructure:"tip"`
	Note   string  `mapstructure:"note"`
}

// Total returns amount plus tip rounded to places.
func (b Bill) Total(places int) float64 {
	return amount.Sum(places, b.Amount, b.Tip)
}

// SubmittedMsg is sent when the done button is pressed.
type SubmittedMsg struct {
	Bill Bill
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	totalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).MarginTop(1)
	savedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	formatter amount.Formatter
	form      form.Form[Bill]
	last      *Bill
	size      util.Size
}

func New(formatter amount.Formatter) *Model {
	return &Model{
		formatter: formatter,
		form: form.New(
			form.WithInput[Bill]("amount", forminput.NewCurrency(i18n.T("bill.amount"), i18n.T("bill.placeholder"), formatter)),
			form.WithInlineInput[Bill]("tip", forminput.NewCurrency(i18n.T("bill.tip"), i18n.T("bill.placeholder"), formatter)),
			form.WithInput[Bill]("note", forminput.NewText(i18n.T("bill.note"), i18n.T("bill.note_placeholder"))),
			form.WithInput[Bill]("done", forminput.NewButton(i18n.T("bill.done"), false)),
			form.WithOnSubmit(func(b Bill, err error) tea.Cmd {
				if err != nil {
					logging.Errorf("could not read bill form: %v", err)
					return nil
				}
				return func() tea.Msg { return SubmittedMsg{Bill: b} }
			}),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(tea.WindowSizeMsg{
			Width:  util.Clamp(20, m.size.Width, 80),
			Height: m.size.Height,
		})
		return cmd
	}

	if msg, ok := msg.(SubmittedMsg); ok {
		b := msg.Bill
		m.last = &b
		logging.Infof("bill submitted: amount=%v tip=%v total=%v", b.Amount, b.Tip, b.Total(m.formatter.MaxFractionDigits()))
		return nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return cmd
}

func (m Model) View() string {
	current, _ := m.form.Get()

	parts := []string{
		titleStyle.Render(i18n.T("bill.title")),
		m.form.View(),
		totalStyle.Render(i18n.T("bill.total", m.currency(current.Total(m.formatter.MaxFractionDigits())))),
	}
	if m.last != nil {
		parts = append(parts, savedStyle.Render(i18n.T("bill.submitted", m.currency(m.last.Total(m.formatter.MaxFractionDigits())))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	return tea.Batch(
		m.form.Focus(baseKeyMap),
		windowtitle.Set(i18n.T("bill.title")),
	)
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Last returns the most recently submitted bill.
func (m Model) Last() (Bill, bool) {
	if m.last == nil {
		return Bill{}, false
	}
	return *m.last, true
}

func (m Model) currency(v float64) string {
	if v == 0 {
		return "-"
	}
	return m.formatter.Currency(v)
}
