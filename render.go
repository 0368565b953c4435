// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Render returns consolidated output lines for registry.
//
// Each user-agent group is written starting at its first Disallow/Allow/Sitemap
// line, followed by one blank separator. Groups without such a line, and
// pseudo-groups, are skipped. A nil registry renders like an empty one here
// and in RenderString and Write.
func Render(reg *Registry) []string {
	lines, _ := render(reg)
	return lines
}

// RenderString returns consolidated output joined with terminator of le.
func RenderString(reg *Registry, le LineEnding) string {
	var b strings.Builder
	// strings.Builder writes never fail.
	_, _ = Write(&b, reg, le)
	return b.String()
}

// Write writes consolidated registry to w using line ending le.
func Write(w io.Writer, reg *Registry, le LineEnding) (RenderStats, error) {
	lines, stats := render(reg)
	term := le.Terminator()

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return stats, fmt.Errorf("write line: %w", err)
		}

		if _, err := bw.WriteString(term); err != nil {
			return stats, fmt.Errorf("write line: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}

	return stats, nil
}

// render builds output lines and counts written and omitted groups.
func render(reg *Registry) ([]string, RenderStats) {
	var stats RenderStats
	if reg == nil {
		return nil, stats
	}

	out := make([]string, 0, 64)
	for _, key := range reg.order {
		if !isHeader(key) {
			continue
		}

		body := groupBody(reg.lines[key])
		if body == nil {
			stats.Omitted++
			continue
		}

		out = append(out, key)
		out = append(out, body...)
		out = append(out, "")
		stats.Groups++
	}

	stats.Lines = len(out)
	return out, stats
}

// groupBody returns lines from the first directive on, without trailing
// blank lines. It returns nil when the group has no directive.
func groupBody(lines []string) []string {
	start := -1
	for i, line := range lines {
		if isDirective(line) {
			start = i
			break
		}
	}

	if start < 0 {
		return nil
	}

	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}

	return lines[start:end]
}
