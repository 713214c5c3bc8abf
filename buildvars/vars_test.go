// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default, got %q", got)
	}
	Version = "v0.3.0"
	if got := VersionOrDefault("dev"); got != "v0.3.0" {
		t.Fatalf("expected injected version, got %q", got)
	}
}
