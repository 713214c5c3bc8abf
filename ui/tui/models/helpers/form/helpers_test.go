// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func containsText(rendered, want string) bool {
	return strings.Contains(ansi.Strip(rendered), want)
}
