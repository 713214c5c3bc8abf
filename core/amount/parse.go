// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package amount

import (
	"strconv"
	"strings"
)

// Parse reads a cleaned amount string. A ',' is taken as the decimal mark,
// otherwise '.' is. It reports false when no number could be read; callers
// keep their previous value in that case.
//
// Mixed input such as "1.234,56" is not treated as grouped and fails.
func Parse(s string) (float64, bool) {
	filtered := string(filter(s, func(r rune) bool {
		return isDigit(r) || r == '.' || r == ','
	}))

	if i := strings.IndexRune(filtered, ','); i >= 0 {
		filtered = filtered[:i] + "." + filtered[i+1:]
	}

	f, err := strconv.ParseFloat(filtered, 64)
	return f, err == nil
}

// Canonical rewrites separator to '.' so that Parse can read strings produced
// by Normalize for locales whose decimal glyph is neither '.' nor ','.
func Canonical(s string, separator rune) string {
	if separator == '.' || separator == ',' {
		return s
	}
	return strings.ReplaceAll(s, string(separator), ".")
}
