// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
	"github.com/toeirei/currencyfield/internal/logging"
	"github.com/toeirei/currencyfield/ui/tui/models/helpers/form"
	"github.com/toeirei/currencyfield/ui/tui/util"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Currency is a money input bound to a float64. While focused it shows the
// plain decimal form of the value and cleans every edit with amount.Normalize;
// when blurred it shows the value in the locale's currency style.
type Currency struct {
	Label       string
	Placeholder string
	KeyMap      CurrencyKeyMap
	Formatter   amount.Formatter

	value   *float64
	input   textinput.Model
	focused bool
}

type CurrencyKeyMap struct {
	Done key.Binding
	Copy key.Binding
}

func (k CurrencyKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Done, k.Copy} }

func (k CurrencyKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Done, k.Copy}} }

type CurrencyOpt = func(c *Currency)

// WithBinding makes the input read and write v instead of its own value.
func WithBinding(v *float64) CurrencyOpt {
	return func(c *Currency) {
		if v != nil {
			c.value = v
		}
	}
}

func NewCurrency(label, placeholder string, formatter amount.Formatter, opts ...CurrencyOpt) *Currency {
	c := &Currency{
		Label:       label,
		Placeholder: placeholder,
		Formatter:   formatter,
		KeyMap: CurrencyKeyMap{
			Done: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", i18n.T("key.done")),
			),
			Copy: key.NewBinding(
				key.WithKeys("ctrl+y"),
				key.WithHelp("ctrl+y", i18n.T("key.copy")),
			),
		},
		value: new(float64),
		input: textinput.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.input.Prompt = ""
	c.refresh()
	return c
}

// Value returns the bound amount.
func (c *Currency) Value() float64 { return *c.value }

// Text returns what the field currently displays.
func (c *Currency) Text() string { return c.input.Value() }

func (c *Currency) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	c.focused = true
	c.input.SetValue(c.decimalString())
	c.input.CursorEnd()
	return tea.Batch(c.input.Focus(), util.AnnounceKeyMapCmd(baseKeyMap, c.KeyMap))
}

func (c *Currency) Blur() {
	c.focused = false
	c.input.Blur()
	c.input.SetValue(c.currencyString())
}

func (c *Currency) Get() any {
	return *c.value
}

func (c *Currency) Init() tea.Cmd {
	return nil
}

func (c *Currency) Reset() {
	*c.value = 0
	c.refresh()
}

// Set accepts numbers and strings; strings go through amount.Parse and are
// ignored when they do not parse.
func (c *Currency) Set(value any) {
	switch v := value.(type) {
	case float64:
		*c.value = v
	case float32:
		*c.value = float64(v)
	case int:
		*c.value = float64(v)
	case int64:
		*c.value = float64(v)
	case string:
		f, ok := amount.Parse(v)
		if !ok {
			return
		}
		*c.value = f
	default:
		return
	}
	c.refresh()
}

func (c *Currency) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, c.KeyMap.Done):
			return nil, form.ActionNext
		case key.Matches(msg, c.KeyMap.Copy):
			return c.copyCmd(), form.ActionNone
		}
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if after := c.input.Value(); after != before {
		c.textChanged(after)
	}
	return cmd, form.ActionNone
}

func (c *Currency) View(width int) string {
	c.input.Width = max(width-2, 1)
	c.input.Placeholder = c.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left,
		renderLabel(c.Label, c.focused, width),
		c.input.View(),
	)
}

var _ form.FormInput = (*Currency)(nil)

// textChanged runs on every edit. Display updates made here never call back
// into it, and edits arriving while blurred are ignored.
func (c *Currency) textChanged(text string) {
	if !c.focused {
		return
	}

	sep := c.Formatter.Separator()
	corrected := amount.Normalize(text, c.Formatter.MaxFractionDigits(), sep)
	v, ok := amount.Parse(amount.Canonical(corrected, sep))
	if !ok {
		logging.Debugf("currency input %q: rejected %q", c.Label, text)
		c.input.SetValue(c.decimalString())
		c.input.CursorEnd()
		return
	}

	*c.value = v
	if corrected != text {
		c.input.SetValue(corrected)
		c.input.CursorEnd()
	}
}

func (c *Currency) refresh() {
	if c.focused {
		c.input.SetValue(c.decimalString())
	} else {
		c.input.SetValue(c.currencyString())
	}
	c.input.CursorEnd()
}

func (c *Currency) decimalString() string {
	return c.Formatter.Decimal(*c.value)
}

func (c *Currency) currencyString() string {
	return c.Formatter.Currency(*c.value)
}

func (c *Currency) copyCmd() tea.Cmd {
	text := c.decimalString()
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			logging.Warnf("could not copy %q to clipboard: %v", text, err)
		}
		return nil
	}
}
