// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
	"github.com/toeirei/currencyfield/ui/tui/models/helpers/form"
	forminput "github.com/toeirei/currencyfield/ui/tui/models/helpers/form/input"
	"golang.org/x/text/language"
)

type bill struct {
	Amount float64 `mapstructure:"amount"`
	Note   string  `mapstructure:"note"`
}

type fixture struct {
	form      form.Form[bill]
	amount    *forminput.Currency
	note      *forminput.Text
	submitted []bill
}

func newFixture(t *testing.T, opts ...form.NewOpt[bill]) *fixture {
	t.Helper()
	i18n.Init("en")

	fx := &fixture{
		amount: forminput.NewCurrency("Amount", "", amount.NewFormatter(language.AmericanEnglish)),
		note:   forminput.NewText("Note", ""),
	}
	opts = append([]form.NewOpt[bill]{
		form.WithInput[bill]("amount", fx.amount),
		form.WithInput[bill]("note", fx.note),
		form.WithInput[bill]("done", forminput.NewButton("Done", false)),
		form.WithOnSubmit(func(b bill, err error) tea.Cmd {
			if err != nil {
				t.Fatalf("submit decode error: %v", err)
			}
			fx.submitted = append(fx.submitted, b)
			return nil
		}),
	}, opts...)
	fx.form = form.New(opts...)
	fx.form.Focus(nil)
	return fx
}

func (fx *fixture) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		fx.form, _ = fx.form.Update(msg)
	}
}

func (fx *fixture) typeText(s string) {
	for _, r := range s {
		fx.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestForm_FillAndSubmit(t *testing.T) {
	fx := newFixture(t)

	fx.typeText("12.345")
	fx.send(tea.KeyMsg{Type: tea.KeyTab})
	if fx.form.ActiveID() != "note" {
		t.Fatalf("expected note focused, got %q", fx.form.ActiveID())
	}
	if want := fx.amount.Formatter.Currency(12.34); fx.amount.Text() != want {
		t.Fatalf("blurred amount shows %q, want %q", fx.amount.Text(), want)
	}

	fx.typeText("lunch")
	fx.send(tea.KeyMsg{Type: tea.KeyEnter}) // next
	fx.send(tea.KeyMsg{Type: tea.KeyEnter}) // click done

	want := []bill{{Amount: 12.34, Note: "lunch"}}
	if diff := cmp.Diff(want, fx.submitted); diff != "" {
		t.Fatalf("unexpected submission (-want +got):\n%s", diff)
	}
}

func TestForm_NavigationWraps(t *testing.T) {
	fx := newFixture(t)

	fx.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if fx.form.ActiveID() != "done" {
		t.Fatalf("expected wrap to done, got %q", fx.form.ActiveID())
	}
	fx.send(tea.KeyMsg{Type: tea.KeyTab})
	if fx.form.ActiveID() != "amount" {
		t.Fatalf("expected wrap to amount, got %q", fx.form.ActiveID())
	}
}

func TestForm_IgnoresInputWhenBlurred(t *testing.T) {
	fx := newFixture(t)
	fx.form.Blur()

	fx.typeText("5")
	fx.send(tea.KeyMsg{Type: tea.KeyTab})
	if fx.amount.Value() != 0 {
		t.Fatalf("blurred form accepted input, value %v", fx.amount.Value())
	}
	if fx.form.ActiveID() != "amount" {
		t.Fatalf("blurred form moved focus to %q", fx.form.ActiveID())
	}
}

func TestForm_ResetAfterSubmit(t *testing.T) {
	fx := newFixture(t, form.WithResetAfterSubmit[bill]())

	fx.typeText("3")
	fx.send(tea.KeyMsg{Type: tea.KeyShiftTab}) // to done
	fx.send(tea.KeyMsg{Type: tea.KeyEnter})

	if len(fx.submitted) != 1 || fx.submitted[0].Amount != 3 {
		t.Fatalf("unexpected submissions: %+v", fx.submitted)
	}
	if fx.amount.Value() != 0 {
		t.Fatalf("expected amount reset, got %v", fx.amount.Value())
	}
	if fx.form.ActiveID() != "amount" {
		t.Fatalf("expected focus back on amount, got %q", fx.form.ActiveID())
	}
}

func TestForm_SetAndGet(t *testing.T) {
	fx := newFixture(t)

	if err := fx.form.Set(bill{Amount: 3.5, Note: "taxi"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := fx.form.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(bill{Amount: 3.5, Note: "taxi"}, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
	// amount holds focus, so it shows the decimal form
	if fx.amount.Text() != "3.5" {
		t.Fatalf("expected focused amount to show 3.5, got %q", fx.amount.Text())
	}
}

func TestForm_ViewRendersLabels(t *testing.T) {
	fx := newFixture(t)
	fx.send(tea.WindowSizeMsg{Width: 60, Height: 20})

	out := fx.form.View()
	for _, want := range []string{"Amount", "Note", "Done"} {
		if !containsText(out, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, out)
		}
	}
}
