// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import "slices"

// Registry is an insertion-ordered map from group key to collected lines.
//
// Keys are normally user-agent header lines. Lines seen before any header
// become pseudo-group keys, which are kept for ordering but never rendered.
// The zero value is ready to use.
type Registry struct {
	lines   map[string][]string
	order   []string
	dropped int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{lines: make(map[string][]string)}
}

// Reset empties the line list of key.
//
// An existing key keeps its position, a new key is appended at the end.
func (r *Registry) Reset(key string) {
	if r.lines == nil {
		r.lines = make(map[string][]string)
	}

	if _, ok := r.lines[key]; !ok {
		r.order = append(r.order, key)
	}

	r.lines[key] = []string{}
}

// Append adds line to the list of key, registering key when absent.
func (r *Registry) Append(key string, line string) {
	if _, ok := r.lines[key]; !ok {
		r.Reset(key)
	}

	r.lines[key] = append(r.lines[key], line)
}

// Lines returns a copy of lines stored for key and whether key exists.
func (r *Registry) Lines(key string) ([]string, bool) {
	lines, ok := r.lines[key]
	if !ok {
		return nil, false
	}

	return slices.Clone(lines), true
}

// Contains reports whether key exists and holds exact line text.
func (r *Registry) Contains(key string, line string) bool {
	return slices.Contains(r.lines[key], line)
}

// Keys returns group keys in insertion order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.order)
}

// Groups returns all groups in insertion order, pseudo-groups included.
func (r *Registry) Groups() []Group {
	out := make([]Group, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, Group{
			Agent: key,
			Lines: slices.Clone(r.lines[key]),
		})
	}

	return out
}

// Len returns the number of keys.
func (r *Registry) Len() int {
	return len(r.order)
}

// Dropped returns the number of lines parse removed as wildcard duplicates.
func (r *Registry) Dropped() int {
	return r.dropped
}
