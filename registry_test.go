// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import (
	"slices"
	"testing"
)

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()

	var reg Registry
	if _, ok := reg.Lines(WildcardAgent); ok {
		t.Fatalf("empty registry must not report wildcard group")
	}

	if reg.Contains(WildcardAgent, "Disallow: /") {
		t.Fatalf("empty registry must not contain lines")
	}

	reg.Append("User-agent: A", "Disallow: /a")
	if reg.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", reg.Len())
	}
}

func TestRegistryResetKeepsPosition(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Reset("a")
	reg.Append("a", "1")
	reg.Reset("b")
	reg.Reset("a")

	if got := reg.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("keys=%q", got)
	}

	lines, ok := reg.Lines("a")
	if !ok || len(lines) != 0 {
		t.Fatalf("lines=%q ok=%v, want empty", lines, ok)
	}
}

func TestRegistryCopies(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Append("a", "1")

	lines, _ := reg.Lines("a")
	lines[0] = "mutated"

	groups := reg.Groups()
	groups[0].Lines[0] = "mutated"

	keys := reg.Keys()
	keys[0] = "mutated"

	if !reg.Contains("a", "1") {
		t.Fatalf("registry was unexpectedly aliased")
	}
}
