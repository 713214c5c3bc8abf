// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the embedded locale files against the i18n.T calls in
// the source tree. Keys used in code but missing from the primary locale, and
// keys of the primary locale missing from any other locale, fail the run.
// Orphaned keys and hardcoded UI strings are reported as warnings.
//
// Run it from the repository root: go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Location is the file and line of a finding.
type Location struct {
	Filepath string
	Line     int
}

type Report struct {
	Used         map[string]Location
	Primary      map[string]struct{}
	Undefined    []string
	Orphaned     []string
	Missing      map[string][]string
	Untranslated map[string][]Location
}

// Failed reports whether the report contains errors rather than warnings.
func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

var (
	usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// calls that usually carry user-facing text
	uiCallRe = regexp.MustCompile(`\b(NewText|NewButton|NewCurrency|Render)\("([^"]+)"`)
	keyRe    = regexp.MustCompile(`^[a-z_]+\.[a-z\._]+$`)
)

func main() {
	report, err := Lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("i18n-linter: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d keys used in code, %d keys in %s\n\n", len(report.Used), len(report.Primary), primaryLocale)

	section("Undefined keys (used in code, missing from "+primaryLocale+")", report.Undefined, func(k string) string {
		loc := report.Used[k]
		return fmt.Sprintf("%s (%s:%d)", k, loc.Filepath, loc.Line)
	})
	section("Orphaned keys (in "+primaryLocale+", unused)", report.Orphaned, nil)

	files := make([]string, 0, len(report.Missing))
	for file := range report.Missing {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		section("Missing keys in "+file, report.Missing[file], nil)
	}

	literals := make([]string, 0, len(report.Untranslated))
	for literal := range report.Untranslated {
		literals = append(literals, literal)
	}
	sort.Strings(literals)
	section("Potentially untranslated strings", literals, func(l string) string {
		loc := report.Untranslated[l][0]
		return fmt.Sprintf("%q (%s:%d)", l, loc.Filepath, loc.Line)
	})

	if report.Failed() {
		fmt.Println("FAIL: locale files are inconsistent")
		os.Exit(1)
	}
	fmt.Println("ok")
}

func section(title string, items []string, render func(string) string) {
	fmt.Printf("--- %s ---\n", title)
	if len(items) == 0 {
		fmt.Println("  none")
	}
	for _, item := range items {
		if render != nil {
			item = render(item)
		}
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

// Lint scans the Go sources under root and the locale files in dir.
func Lint(root, dir, primary string) (Report, error) {
	report := Report{Missing: map[string][]string{}}

	used, untranslated, err := scanSources(root)
	if err != nil {
		return report, fmt.Errorf("scanning sources: %w", err)
	}
	report.Used, report.Untranslated = used, untranslated

	report.Primary, err = loadKeysFromLocale(filepath.Join(dir, primary))
	if err != nil {
		return report, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	for key := range report.Used {
		if _, ok := report.Primary[key]; !ok {
			report.Undefined = append(report.Undefined, key)
		}
	}
	for key := range report.Primary {
		if _, ok := report.Used[key]; !ok {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	sort.Strings(report.Undefined)
	sort.Strings(report.Orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return report, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for key := range report.Primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		report.Missing[filepath.Base(file)] = missing
	}

	return report, nil
}

// scanSources collects i18n.T keys and hardcoded UI literals from non-test
// Go files, skipping tools and underscore directories.
func scanSources(root string) (map[string]Location, map[string][]Location, error) {
	used := map[string]Location{}
	untranslated := map[string][]Location{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			loc := Location{Filepath: path, Line: i + 1}
			for _, m := range usedKeyRe.FindAllStringSubmatch(line, -1) {
				if _, seen := used[m[1]]; !seen {
					used[m[1]] = loc
				}
			}
			for _, m := range uiCallRe.FindAllStringSubmatch(line, -1) {
				if literal := m[2]; looksLikeText(literal) {
					untranslated[literal] = append(untranslated[literal], loc)
				}
			}
		}
		return nil
	})

	return used, untranslated, err
}

func looksLikeText(s string) bool {
	if len(s) < 4 || keyRe.MatchString(s) {
		return false
	}
	return strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'z' })
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys. Locale files are
// flat today, nested sections keep working.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
