// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{keyMap: NewKeyMap()}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithInput adds input on a row of its own.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{id: id, input: input})
		form.rows = append(form.rows, formRow{items: []int{len(form.items) - 1}})
	}
}

// WithInlineInput adds input next to the previous one on the same row.
func WithInlineInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{id: id, input: input})
		if len(form.rows) == 0 {
			form.rows = append(form.rows, formRow{})
		}
		last := &form.rows[len(form.rows)-1]
		last.items = append(last.items, len(form.items)-1)
	}
}
