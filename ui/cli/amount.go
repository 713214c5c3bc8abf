// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/i18n"
)

func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize RAW",
		Short: "Clean raw input the way the field does while typing",
		Long: `Filters RAW to digits and the decimal separator, drops a doubled
separator and trims fraction digits beyond --digits. The separator defaults
to the one of the configured locale.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, _ := cmd.Flags().GetInt("digits")
			if !cmd.Flags().Changed("digits") {
				digits = formatter.MaxFractionDigits()
			}

			sep := formatter.Separator()
			if s, _ := cmd.Flags().GetString("separator"); s != "" {
				if utf8.RuneCountInString(s) != 1 {
					return fmt.Errorf("--separator must be a single character, got %q", s)
				}
				sep, _ = utf8.DecodeRuneInString(s)
			}

			out := amount.Normalize(args[0], digits, sep)
			if out == "" {
				return fmt.Errorf("%w: %s", ErrRejected, i18n.T("cli.rejected", args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Int("digits", amount.DefaultFractionDigits, "Maximum fraction digits")
	cmd.Flags().String("separator", "", "Decimal separator (single character)")
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse S",
		Short: "Read a cleaned amount string as a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := amount.Parse(amount.Canonical(args[0], formatter.Separator()))
			if !ok {
				return fmt.Errorf("%w: %s", ErrRejected, i18n.T("cli.unparsable", args[0]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'f', -1, 64))
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format VALUE",
		Short: "Render a value as the field displays it",
		Long: `Renders VALUE in the configured locale. The decimal style is what the
field shows while focused, the currency style what it shows after losing
focus. Zero renders as an empty line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := amount.Parse(amount.Canonical(args[0], formatter.Separator()))
			if !ok {
				return fmt.Errorf("%w: %s", ErrRejected, i18n.T("cli.unparsable", args[0]))
			}

			style, _ := cmd.Flags().GetString("style")
			switch style {
			case "decimal":
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Decimal(v))
			case "currency":
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Currency(v))
			default:
				return fmt.Errorf("unknown style %q, want decimal or currency", style)
			}
			return nil
		},
	}
	cmd.Flags().String("style", "currency", "Output style: decimal or currency")
	return cmd
}
