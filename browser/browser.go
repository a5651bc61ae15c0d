// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"fmt"
	"io"
	"strings"

	"github.com/jongio/browser-core/urlutil"
	pkgbrowser "github.com/pkg/browser"
)

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

// openURL is swapped out in tests.
var openURL = pkgbrowser.OpenURL

func init() {
	// pkg/browser copies the launcher's output to our stdout by default,
	// which would corrupt JSON output.
	pkgbrowser.Stdout = io.Discard
}

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	for _, valid := range ValidTargets() {
		if Target(target) == valid {
			return true
		}
	}
	return false
}

// ResolveTarget maps default to system and leaves none alone.
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// Target browser to use
	Target Target
}

// Launch parses opts.URL and, unless the target is none, opens it in the
// system browser. The parsed URL is returned so callers can report what was
// opened.
func Launch(opts LaunchOptions) (urlutil.URL, error) {
	u, err := urlutil.Parse(opts.URL)
	if err != nil {
		return urlutil.URL{}, err
	}

	if ResolveTarget(opts.Target) == TargetNone {
		return u, nil
	}

	if err := openURL(u.Raw()); err != nil {
		return u, fmt.Errorf("could not open browser: %w", err)
	}
	return u, nil
}
