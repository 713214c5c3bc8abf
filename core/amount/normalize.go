// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package amount

import (
	"strconv"
	"strings"
)

// DefaultFractionDigits is the number of fraction digits a currency field keeps.
const DefaultFractionDigits = 2

// Normalize cleans raw keystroke input into a decimal string with at most
// maxFractionDigits digits after separator. Only ASCII digits and separator
// survive; any other '.' or ',' is a thousands mark and is dropped. The result
// is either empty, which means the input was rejected, or a literal that
// parses as a number once the separator is swapped for '.'.
func Normalize(raw string, maxFractionDigits int, separator rune) string {
	if maxFractionDigits < 0 {
		maxFractionDigits = 0
	}

	filtered := filter(raw, func(r rune) bool {
		return isDigit(r) || r == separator
	})

	count := 0
	for _, r := range filtered {
		if r == separator {
			count++
		}
	}

	// a second separator is most likely a doubled keypress, drop the newest one
	if count > 1 {
		filtered = dropLast(filtered, separator)
		count--
	}

	if count == 0 {
		if !isNumber(string(filtered)) {
			return ""
		}
		return string(filtered)
	}

	sepIndex := indexOf(filtered, separator)
	filtered[sepIndex] = '.'

	for sepIndex < len(filtered)-(1+maxFractionDigits) {
		filtered = filtered[:len(filtered)-1]
	}

	if !isNumber(string(filtered)) {
		return ""
	}

	var b strings.Builder
	b.WriteString(string(filtered[:sepIndex]))
	b.WriteRune(separator)
	b.WriteString(string(filtered[sepIndex+1:]))
	return b.String()
}

func filter(s string, keep func(rune) bool) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func dropLast(rs []rune, target rune) []rune {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == target {
			return append(rs[:i:i], rs[i+1:]...)
		}
	}
	return rs
}

func indexOf(rs []rune, target rune) int {
	for i, r := range rs {
		if r == target {
			return i
		}
	}
	return -1
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
