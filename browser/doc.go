// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package browser hands a URL to the system web browser.
//
// Launching delegates to github.com/pkg/browser. Before anything is opened the
// URL goes through urlutil, so only http:// URLs reach the system handler;
// file://, javascript: and friends are rejected with
// urlutil.ErrUnsupportedScheme.
//
// # Targets
//
//   - default: the system default browser
//   - system: alias for default
//   - none: validate only, open nothing
//
// # Usage
//
//	err := browser.Launch(browser.LaunchOptions{
//		URL:    "http://localhost:8080/",
//		Target: browser.TargetDefault,
//	})
package browser
