// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
	"github.com/toeirei/currencyfield/ui/tui/models/helpers/form"
	"golang.org/x/text/language"
)

func newTestCurrency(t *testing.T, tag language.Tag, opts ...CurrencyOpt) *Currency {
	t.Helper()
	i18n.Init("en")
	return NewCurrency("Amount", "0.00", amount.NewFormatter(tag), opts...)
}

func typeText(c *Currency, s string) {
	for _, r := range s {
		c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func backspace(c *Currency, n int) {
	for i := 0; i < n; i++ {
		c.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

func TestCurrency_NormalizesWhileTyping(t *testing.T) {
	c := newTestCurrency(t, language.English)
	c.Focus(nil)

	typeText(c, "12.345")
	if c.Text() != "12.34" {
		t.Fatalf("expected display 12.34, got %q", c.Text())
	}
	if c.Value() != 12.34 {
		t.Fatalf("expected value 12.34, got %v", c.Value())
	}
}

func TestCurrency_DuplicateSeparatorDropped(t *testing.T) {
	c := newTestCurrency(t, language.English)
	c.Focus(nil)

	typeText(c, "12..5")
	if c.Text() != "12.5" {
		t.Fatalf("expected display 12.5, got %q", c.Text())
	}
	if c.Value() != 12.5 {
		t.Fatalf("expected value 12.5, got %v", c.Value())
	}
}

func TestCurrency_FiltersLetters(t *testing.T) {
	c := newTestCurrency(t, language.English)
	c.Focus(nil)

	typeText(c, "4x2")
	if c.Text() != "42" || c.Value() != 42 {
		t.Fatalf("expected 42, got text %q value %v", c.Text(), c.Value())
	}
}

func TestCurrency_RejectedEditRestoresLastValue(t *testing.T) {
	c := newTestCurrency(t, language.English)
	c.Focus(nil)

	typeText(c, "12.5")
	backspace(c, 3)
	if c.Text() != "1" || c.Value() != 1 {
		t.Fatalf("expected 1 after backspaces, got text %q value %v", c.Text(), c.Value())
	}

	// clearing the last digit yields no number, the last value is redisplayed
	backspace(c, 1)
	if c.Text() != "1" {
		t.Fatalf("expected last good value redisplayed, got %q", c.Text())
	}
	if c.Value() != 1 {
		t.Fatalf("bound value must be untouched, got %v", c.Value())
	}
}

func TestCurrency_CommaLocale(t *testing.T) {
	c := newTestCurrency(t, language.German)
	c.Focus(nil)

	typeText(c, "12,345")
	if c.Text() != "12,34" {
		t.Fatalf("expected display 12,34, got %q", c.Text())
	}
	if c.Value() != 12.34 {
		t.Fatalf("expected value 12.34, got %v", c.Value())
	}
}

func TestCurrency_FocusSwitchesRepresentation(t *testing.T) {
	c := newTestCurrency(t, language.AmericanEnglish)
	c.Set(12.5)

	if want := c.Formatter.Currency(12.5); c.Text() != want {
		t.Fatalf("blurred display = %q, want %q", c.Text(), want)
	}

	c.Focus(nil)
	if c.Text() != "12.5" {
		t.Fatalf("focused display = %q, want 12.5", c.Text())
	}

	c.Blur()
	if want := c.Formatter.Currency(12.5); c.Text() != want {
		t.Fatalf("display after blur = %q, want %q", c.Text(), want)
	}
}

func TestCurrency_ZeroShowsEmpty(t *testing.T) {
	c := newTestCurrency(t, language.English)
	if c.Text() != "" {
		t.Fatalf("expected empty blurred display, got %q", c.Text())
	}
	c.Focus(nil)
	if c.Text() != "" {
		t.Fatalf("expected empty focused display, got %q", c.Text())
	}
}

func TestCurrency_IgnoresEditsWhileBlurred(t *testing.T) {
	c := newTestCurrency(t, language.English)
	c.Set(3.0)
	before := c.Text()

	typeText(c, "9")
	c.textChanged("99")

	if c.Text() != before {
		t.Fatalf("blurred input changed display to %q", c.Text())
	}
	if c.Value() != 3 {
		t.Fatalf("blurred input changed value to %v", c.Value())
	}
}

func TestCurrency_Binding(t *testing.T) {
	bound := 7.25
	c := newTestCurrency(t, language.English, WithBinding(&bound))

	c.Focus(nil)
	if c.Text() != "7.25" {
		t.Fatalf("expected bound value displayed, got %q", c.Text())
	}

	typeText(c, "5")
	if bound != 7.25 {
		t.Fatalf("third fraction digit must not change bound value, got %v", bound)
	}

	backspace(c, 1)
	typeText(c, "9")
	if bound != 7.29 {
		t.Fatalf("expected bound value 7.29, got %v", bound)
	}
}

func TestCurrency_SetGetReset(t *testing.T) {
	c := newTestCurrency(t, language.English)

	c.Set("3,5")
	if got := c.Get(); got != 3.5 {
		t.Fatalf("Set(\"3,5\") -> Get() = %v", got)
	}
	c.Set("abc")
	if c.Value() != 3.5 {
		t.Fatalf("unparsable Set must be ignored, got %v", c.Value())
	}
	c.Set(4)
	if c.Value() != 4 {
		t.Fatalf("Set(int) -> %v", c.Value())
	}

	c.Reset()
	if c.Value() != 0 || c.Text() != "" {
		t.Fatalf("expected cleared input, got text %q value %v", c.Text(), c.Value())
	}
}

func TestCurrency_DoneAndCopyKeys(t *testing.T) {
	c := newTestCurrency(t, language.English)
	c.Focus(nil)
	typeText(c, "8.5")

	if _, action := c.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != form.ActionNext {
		t.Fatalf("expected ActionNext on enter, got %v", action)
	}

	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = prev }()

	cmd, action := c.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if action != form.ActionNone || cmd == nil {
		t.Fatalf("expected copy command, got action %v cmd %v", action, cmd)
	}
	cmd()
	if copied != "8.5" {
		t.Fatalf("expected 8.5 on clipboard, got %q", copied)
	}

	// clipboard failures are logged, not returned
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	cmd, _ = c.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil msg, got %v", msg)
	}
}

func TestCurrency_NativeDigitLocaleKeepsValueOnEdit(t *testing.T) {
	bound := 12.5
	c := newTestCurrency(t, language.Arabic, WithBinding(&bound))
	c.Focus(nil)

	sep := string(c.Formatter.Separator())
	if c.Text() != "12"+sep+"5" {
		t.Fatalf("expected latin digits on focus, got %q", c.Text())
	}

	typeText(c, "3")
	if bound != 12.53 {
		t.Fatalf("expected 12.53 after typing, got %v (display %q)", bound, c.Text())
	}
}

func TestCurrency_CommaLocaleStripsDots(t *testing.T) {
	c := newTestCurrency(t, language.German)
	c.Focus(nil)

	// '.' is a thousands mark in German
	typeText(c, "12.3456")
	if c.Text() != "123456" || c.Value() != 123456 {
		t.Fatalf("expected 123456, got text %q value %v", c.Text(), c.Value())
	}

	c.Reset()
	typeText(c, "12,3456")
	if c.Text() != "12,34" || c.Value() != 12.34 {
		t.Fatalf("expected 12,34, got text %q value %v", c.Text(), c.Value())
	}
	c.Blur()
	if want := c.Formatter.Currency(12.34); c.Text() != want {
		t.Fatalf("blurred display = %q, want %q", c.Text(), want)
	}
}
