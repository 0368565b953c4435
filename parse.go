// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds one input line.
const maxLineSize = 1 << 20

// Parse reads robots.txt lines from reader into an ordered registry.
//
// Semantics:
// - lines end with "\n", "\r\n" or a lone "\r"
// - "User-agent:" lines open (or reset) a group keyed by the exact line text
// - blank and "#" lines always go to the current group
// - other lines are dropped when the wildcard group already holds the same text
// - a missing wildcard group means nothing is a duplicate yet
// - lines before the first header become unrendered pseudo-groups
//
// On scan failure the registry built so far is returned with the error.
func Parse(r io.Reader) (*Registry, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s.Split(scanLines)

	reg := NewRegistry()
	current := ""
	inGroup := false

	for s.Scan() {
		line := s.Text()

		if isHeader(line) {
			current = line
			inGroup = true
			reg.Reset(line)
			continue
		}

		if !isBlank(line) &&
			!strings.HasPrefix(line, CommentPrefix) &&
			reg.Contains(WildcardAgent, line) {
			reg.dropped++
			continue
		}

		if !inGroup {
			reg.Reset(line)
			continue
		}

		reg.Append(current, line)
	}

	if err := s.Err(); err != nil {
		return reg, fmt.Errorf("scan robots: %w", err)
	}

	return reg, nil
}

// scanLines splits input on "\n", "\r\n" or a lone "\r".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}

		return 0, nil, nil
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}

		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	default:
		// "\r" at buffer end, need one more byte to tell "\r\n" apart.
		return 0, nil, nil
	}
}

// ParseString parses robots.txt from string input.
func ParseString(src string) (*Registry, error) {
	return Parse(strings.NewReader(src))
}
