// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import "errors"

// Sentinel errors for robotstidy operations.
var (
	// ErrRead indicates robots file could not be opened or read.
	ErrRead = errors.New("read robots file")
	// ErrWrite indicates consolidated output could not be written.
	ErrWrite = errors.New("write robots file")
	// ErrInvalidLineEnding indicates unsupported line ending name.
	ErrInvalidLineEnding = errors.New("invalid line ending")
)
