// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Command maintest runs the bill view without config or logging, for manual
// checks of a locale: go run ./ui/tui/maintest de-DE EUR
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
	tui "github.com/toeirei/currencyfield/ui/tui"
)

func main() {
	locale, iso := "en-US", ""
	if len(os.Args) > 1 {
		locale = os.Args[1]
	}
	if len(os.Args) > 2 {
		iso = os.Args[2]
	}

	i18n.Init(locale)
	formatter, err := amount.ParseFormatter(locale, iso, amount.DefaultFractionDigits)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := tui.Run(formatter); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
