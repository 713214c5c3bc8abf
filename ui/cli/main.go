// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/currencyfield/buildvars"
	"github.com/toeirei/currencyfield/core/amount"
	"github.com/toeirei/currencyfield/internal/config"
	"github.com/toeirei/currencyfield/internal/i18n"
	"github.com/toeirei/currencyfield/internal/logging"
	"github.com/toeirei/currencyfield/ui/tui"
	"golang.org/x/term"
)

const modulePath = "github.com/toeirei/currencyfield"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var (
	// ErrRejected is returned when an amount command cannot make a number of its input.
	ErrRejected = errors.New("input rejected")
	// ErrNotTerminal is returned when the TUI is started without a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

var (
	appConfig config.Config
	formatter amount.Formatter
	logCloser io.Closer

	// isTerminal is swapped in tests.
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runTUI     = tui.Run
)

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A missing file is expected on first run, write the defaults so the user
	// has something to edit.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// flags of this run stay out of the persisted defaults
		defaults, _ := config.LoadConfig[config.Config](nil, config.Defaults(), nil)
		if path, writeErr := config.WriteConfigFile(&defaults, false); writeErr != nil {
			log.Warnf("could not write default config file: %v", writeErr)
		} else {
			log.Debugf("wrote default config to %s", path)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	i18n.Init(appConfig.Language)

	if logCloser != nil {
		_ = logCloser.Close()
	}
	logCloser, err = logging.Setup(logging.Options{
		File:  appConfig.Log.File,
		Level: appConfig.Log.Level,
	})
	if err != nil {
		return fmt.Errorf("error setting up logging: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetDebug(true)
		log.SetLevel(log.DebugLevel)
	}

	formatter, err = amount.ParseFormatter(appConfig.NumberLocale(), appConfig.Currency, appConfig.FractionDigits)
	if err != nil {
		return fmt.Errorf("error in number settings: %w", err)
	}
	logging.Debugf("formatter locale=%s currency=%s digits=%d", formatter.Tag(), formatter.Unit(), formatter.MaxFractionDigits())
	return nil
}

// Execute runs the CLI entrypoint. The main package calls it and handles
// process exit.
func Execute() error {
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()

	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates the root command with all subcommands attached. Each
// call returns a fresh tree so tests can run commands in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currencyfield",
		Short: i18n.T("cli.short"),
		Long: `CurrencyField is a currency entry field for terminal forms.
Typed input is cleaned to a decimal with a bounded number of fraction
digits using the locale's decimal separator, and shown as a formatted
currency amount once the field loses focus.

Running without a subcommand launches the interactive bill form.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return fmt.Errorf("%w: %s", ErrNotTerminal, i18n.T("cli.not_terminal"))
			}
			return runTUI(formatter)
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("locale", "", "Number locale (BCP 47), defaults to the UI language")
	cmd.PersistentFlags().String("currency", "", "ISO 4217 currency code, defaults to the locale's currency")
	cmd.PersistentFlags().Int("fraction_digits", amount.DefaultFractionDigits, "Maximum fraction digits kept while typing")
	cmd.PersistentFlags().String("log.file", "", "Write logs to this file (rotated)")
	cmd.PersistentFlags().String("log.level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newNormalizeCmd(),
		newParseCmd(),
		newFormatCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version needs neither config nor logging
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version as a dependency.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
