// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for CurrencyField.
//
// Usage:
//
//	go run . [flags]
//	./currencyfield [flags]
//	./currencyfield normalize 12..5
//
// See --help for options.
package main

import (
	"os"

	log "github.com/charmbracelet/log"
	"github.com/toeirei/currencyfield/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Errorf("currencyfield: %v", err)
		os.Exit(1)
	}
}
