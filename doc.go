// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

/*
Package robotstidy consolidates robots.txt files.

Directives are grouped under their owning "User-agent:" header and lines that
are already present under the wildcard group ("User-agent: *") are removed
from every other group. Groups without any Disallow/Allow/Sitemap directive
are dropped from the output.

Basic flow:
  - parse robots.txt text into an ordered registry (`Parse`)
  - optionally load it from file (`ReadFile`)
  - render consolidated lines (`Render` / `Write`)
  - or run the whole pipeline on a file in place (`Consolidator.ConsolidateFile`)

File rewrites go through a temporary file and a rename, so a failed run never
leaves a truncated robots.txt behind.
*/
package robotstidy
