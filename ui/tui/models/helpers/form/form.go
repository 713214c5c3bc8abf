// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form lays out a set of inputs, moves focus between them and decodes
// their values into a result struct with mapstructure.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/currencyfield/ui/tui/util"
	"github.com/toeirei/currencyfield/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	keyMap      KeyMap
	baseKeyMap  help.KeyMap
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, f.keyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(kmsg, f.keyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(f.size.Width / len(row.items))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus(baseKeyMap help.KeyMap) tea.Cmd {
	f.focused, f.baseKeyMap = true, baseKeyMap
	if len(f.items) == 0 {
		return util.AnnounceKeyMapCmd(f.baseKeyMap, f.keyMap)
	}
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.baseKeyMap, f.keyMap))
}

func (f *Form[T]) Blur() {
	f.focused, f.baseKeyMap = false, nil
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// ActiveID returns the id of the input holding focus.
func (f Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd, submitCmd tea.Cmd
	data, err := f.Get()
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

// changeActiveIndex moves focus by delta, wrapping around at both ends.
func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)

	if delta != 0 {
		old := f.activeIndex
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
		if f.focused {
			f.items[old].input.Blur()
		}
	}

	if !f.focused {
		return nil
	}
	return f.items[f.activeIndex].input.Focus(util.MergeKeyMaps(f.baseKeyMap, f.keyMap))
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := slicest.ToMap(f.items, func(item formItem) (string, any) {
		return item.id, item.input.Get()
	})

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
