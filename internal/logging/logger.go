// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the package-level logger shared by the TUI and CLI.
// The TUI owns the terminal, so Setup routes output to a rotated log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the package-level logger. Callers should use the helper functions
// below for compatibility with existing calls.
var L = clog.New(os.Stderr)

// Options control where Setup sends log output.
type Options struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// Setup replaces L with a logger writing to a rotated file. An empty file
// discards output. The returned closer releases the file handle.
func Setup(opts Options) (io.Closer, error) {
	level, err := clog.ParseLevel(opts.Level)
	if err != nil {
		level = clog.InfoLevel
	}

	if opts.File == "" {
		L = clog.New(io.Discard)
		L.SetLevel(level)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 3
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	}

	L = clog.NewWithOptions(file, clog.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return file, nil
}

// SetDebug toggles debug output on L.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
