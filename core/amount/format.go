// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package amount

import (
	"fmt"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts for one locale. Build it with NewFormatter or
// ParseFormatter.
type Formatter struct {
	tag               language.Tag
	unit              currency.Unit
	maxFractionDigits int
}

type FormatterOpt = func(f *Formatter)

// WithCurrency overrides the currency derived from the locale.
func WithCurrency(unit currency.Unit) FormatterOpt {
	return func(f *Formatter) {
		f.unit = unit
	}
}

func WithMaxFractionDigits(n int) FormatterOpt {
	return func(f *Formatter) {
		if n >= 0 {
			f.maxFractionDigits = n
		}
	}
}

func NewFormatter(tag language.Tag, opts ...FormatterOpt) Formatter {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}

	f := Formatter{
		tag:               tag,
		unit:              unit,
		maxFractionDigits: DefaultFractionDigits,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// ParseFormatter builds a Formatter from a BCP 47 locale and an optional
// ISO 4217 currency code.
func ParseFormatter(locale, isoCode string, maxFractionDigits int) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	opts := []FormatterOpt{WithMaxFractionDigits(maxFractionDigits)}
	if isoCode != "" {
		unit, err := currency.ParseISO(isoCode)
		if err != nil {
			return Formatter{}, fmt.Errorf("invalid currency %q: %w", isoCode, err)
		}
		opts = append(opts, WithCurrency(unit))
	}

	return NewFormatter(tag, opts...), nil
}

func (f Formatter) Tag() language.Tag { return f.tag }

func (f Formatter) Unit() currency.Unit {
	if f.unit == (currency.Unit{}) {
		return currency.USD
	}
	return f.unit
}

func (f Formatter) MaxFractionDigits() int { return f.maxFractionDigits }

// Decimal renders v in the locale's decimal style without grouping, so the
// output can be typed back into a field and parsed again. Zero renders empty.
func (f Formatter) Decimal(v float64) string {
	if v == 0 {
		return ""
	}
	return f.printer().Sprint(number.Decimal(v,
		number.MaxFractionDigits(f.maxFractionDigits),
		number.NoSeparator(),
	))
}

// Currency renders v with the currency symbol of the formatter. Zero renders empty.
func (f Formatter) Currency(v float64) string {
	if v == 0 {
		return ""
	}
	return f.printer().Sprint(currency.Symbol(f.Unit().Amount(Round(v, f.maxFractionDigits))))
}

// Separator returns the decimal mark used by the locale.
func (f Formatter) Separator() rune {
	for _, r := range f.printer().Sprint(number.Decimal(1.5)) {
		if !unicode.IsDigit(r) {
			return r
		}
	}
	return '.'
}

// printer always uses latin digits: Normalize keeps ASCII digits only, so
// native digits in the focused display would be filtered away on the next edit.
func (f Formatter) printer() *message.Printer {
	tag, err := f.tag.SetTypeForKey("nu", "latn")
	if err != nil {
		tag = f.tag
	}
	return message.NewPrinter(tag)
}
