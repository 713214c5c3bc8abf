// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
	"github.com/toeirei/currencyfield/ui/tui/util"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

var (
	baseKeys  = testKeyMap{key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help"))}
	fieldKeys = testKeyMap{key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy amount"))}
)

func newTestFooter(t *testing.T, tag language.Tag, width int) *Model {
	t.Helper()
	i18n.Init("en")
	m := New(baseKeys, amount.NewFormatter(tag, amount.WithCurrency(currency.EUR)))
	m.Update(tea.WindowSizeMsg{Width: width, Height: 1})
	return m
}

func TestStatus_NamesCurrencyAndDecimalMark(t *testing.T) {
	i18n.Init("en")
	got := Status(amount.NewFormatter(language.German, amount.WithCurrency(currency.EUR)))
	if !strings.Contains(got, "EUR") || !strings.Contains(got, "','") {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestFooter_MergesFocusedKeyMap(t *testing.T) {
	m := newTestFooter(t, language.German, 100)

	m.Update(util.AnnounceKeyMapMsg{KeyMap: fieldKeys})
	view := ansi.Strip(m.View())
	for _, want := range []string{"ctrl+y", "f1", "EUR", "','"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in footer, got:\n%s", want, view)
		}
	}

	// nothing focused, only the base bindings remain
	m.Update(util.AnnounceKeyMapMsg{})
	view = ansi.Strip(m.View())
	if strings.Contains(view, "ctrl+y") || !strings.Contains(view, "f1") {
		t.Fatalf("expected base bindings only, got:\n%s", view)
	}
}

func TestFooter_NarrowTerminalDropsStatus(t *testing.T) {
	m := newTestFooter(t, language.English, 20)
	m.Update(util.AnnounceKeyMapMsg{KeyMap: fieldKeys})

	if view := ansi.Strip(m.View()); strings.Contains(view, "EUR") {
		t.Fatalf("status should not fit in 20 columns, got:\n%s", view)
	}
}

func TestFooter_ExpandedHidesStatus(t *testing.T) {
	m := newTestFooter(t, language.English, 100)
	m.Update(util.AnnounceKeyMapMsg{KeyMap: fieldKeys})
	m.ToggleExpanded()

	if !m.Expanded() {
		t.Fatalf("expected expanded footer")
	}
	if view := ansi.Strip(m.View()); strings.Contains(view, "EUR") {
		t.Fatalf("full help should replace the status, got:\n%s", view)
	}
}
