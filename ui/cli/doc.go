// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface using Cobra. It loads
// configuration, sets up i18n and logging, and either launches the TUI or
// runs one of the one-shot amount commands backed by core/amount.
package cli
