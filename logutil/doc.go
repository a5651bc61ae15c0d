// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil is the structured logging layer shared by browser-core
// packages. It configures a process-wide slog logger and hands out
// component-scoped loggers.
//
// # Basic Usage
//
//	// Initialize logging once, usually from the root command
//	logutil.SetupLogger(debug, structured)
//
//	// Package-level helpers
//	logutil.Info("fetch completed", "status", 200)
//
//	// Component loggers carry their context on every line
//	log := logutil.NewLogger("fetch").WithURL(raw)
//	log.Debug("dialing", "address", u.Address())
//
// # Debug Mode
//
// Debug logging is on when SetupLogger receives debug=true or when
// URLCORE_DEBUG=true is set in the environment.
//
// # Structured Logging
//
// structured=true switches the handler to JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"INFO","msg":"fetch completed","status":200}
//
// Otherwise the text handler is used:
//
//	time=2026-01-15T10:30:00Z level=INFO msg="fetch completed" status=200
package logutil
