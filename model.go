// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import (
	"fmt"
	"runtime"
	"strings"
)

// Line prefixes recognized by the parser and renderer.
const (
	// UserAgentPrefix starts a group header line.
	UserAgentPrefix = "User-agent:"
	// WildcardAgent is the header of the group applying to all crawlers.
	WildcardAgent = UserAgentPrefix + " *"
	// CommentPrefix starts a comment line.
	CommentPrefix = "#"

	DisallowPrefix = "Disallow:"
	AllowPrefix    = "Allow:"
	SitemapPrefix  = "Sitemap:"
)

// LineEnding selects output line terminator.
type LineEnding string

const (
	// LineEndingAuto uses platform-native terminator.
	LineEndingAuto LineEnding = ""
	// LineEndingLF uses "\n".
	LineEndingLF LineEnding = "lf"
	// LineEndingCRLF uses "\r\n".
	LineEndingCRLF LineEnding = "crlf"
)

// Group is one user-agent header with its collected lines in input order.
type Group struct {
	// Agent is the exact header line text, e.g. "User-agent: *".
	Agent string `json:"agent" yaml:"agent"`
	// Lines are directive, comment and blank lines collected for the group.
	Lines []string `json:"lines" yaml:"lines"`
}

// RenderStats summarizes one render pass.
type RenderStats struct {
	// Groups is the number of groups written.
	Groups int `json:"groups" yaml:"groups"`
	// Omitted is the number of user-agent groups skipped for lack of directives.
	Omitted int `json:"omitted" yaml:"omitted"`
	// Lines is the number of lines written, separators included.
	Lines int `json:"lines" yaml:"lines"`
}

// ParseLineEnding converts user-facing line ending name to LineEnding.
//
// Accepted values are "auto" (or empty), "lf" and "crlf", case-insensitive.
func ParseLineEnding(raw string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return LineEndingAuto, nil
	case "lf":
		return LineEndingLF, nil
	case "crlf":
		return LineEndingCRLF, nil
	default:
		return LineEndingAuto, fmt.Errorf("%w: %q", ErrInvalidLineEnding, raw)
	}
}

// Terminator returns the byte sequence written after each line.
func (le LineEnding) Terminator() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	default:
		if runtime.GOOS == "windows" {
			return "\r\n"
		}

		return "\n"
	}
}

// isHeader reports whether line opens a user-agent group.
func isHeader(line string) bool {
	return strings.HasPrefix(line, UserAgentPrefix)
}

// isDirective reports whether line is a Disallow/Allow/Sitemap directive.
func isDirective(line string) bool {
	return strings.HasPrefix(line, DisallowPrefix) ||
		strings.HasPrefix(line, AllowPrefix) ||
		strings.HasPrefix(line, SitemapPrefix)
}

// isBlank reports whether line holds only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
