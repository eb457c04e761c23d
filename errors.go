// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import "errors"

// Sentinel errors for hostrules operations.
var (
	// ErrInvalidPattern indicates a host pattern that failed compilation.
	ErrInvalidPattern = errors.New("invalid host pattern")
	// ErrInvalidAddress indicates malformed address input for in-memory tables.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidDomain indicates domain input that cannot be normalized.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrImportCycle indicates a file that directly or transitively imports itself.
	ErrImportCycle = errors.New("import cycle")
	// ErrNilConfig indicates a nil Config receiver.
	ErrNilConfig = errors.New("config is nil")
)
