// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultFileName is the robots file consolidated when no path is given.
const DefaultFileName = "robots.txt"

// Options configures Consolidator behavior.
type Options struct {
	// Logger receives progress and failure records. Nil discards them.
	Logger *slog.Logger
	// Output receives results in DryRun mode. Nil means stdout.
	Output io.Writer
	// LineEnding selects output terminator, platform-native by default.
	LineEnding LineEnding `json:"line_ending,omitempty" yaml:"line_ending,omitempty"`
	// DryRun writes results to Output instead of replacing files.
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// Result reports outcome of consolidating one input.
type Result struct {
	// Path is the consolidated file, empty for stream input.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	RenderStats
	// Dropped is the number of lines removed as wildcard duplicates.
	Dropped int `json:"dropped" yaml:"dropped"`
}

// Consolidator runs the parse, render and write pipeline.
type Consolidator struct {
	logger     *slog.Logger
	output     io.Writer
	lineEnding LineEnding
	dryRun     bool
}

// New creates a Consolidator.
func New(opts Options) *Consolidator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	return &Consolidator{
		logger:     logger,
		output:     output,
		lineEnding: opts.LineEnding,
		dryRun:     opts.DryRun,
	}
}

// Consolidate parses robots.txt from r and writes consolidated output to w.
//
// Nothing is written when parsing fails.
func (c *Consolidator) Consolidate(r io.Reader, w io.Writer) (Result, error) {
	reg, err := Parse(r)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	stats, err := Write(w, reg, c.lineEnding)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return Result{RenderStats: stats, Dropped: reg.Dropped()}, nil
}

// ConsolidateFile rewrites robots file at path in place.
//
// The whole file is read before any output is produced. A read failure
// aborts the run and leaves the file untouched. Failures are logged at
// error level and returned.
func (c *Consolidator) ConsolidateFile(path string) (Result, error) {
	log := c.logger.With(slog.String("path", path))
	log.Info("starting consolidation")

	res := Result{Path: path}

	reg, err := ReadFile(path)
	if err != nil {
		log.Error("read failed", slog.String("error", err.Error()))
		return res, err
	}

	res.Dropped = reg.Dropped()
	log.Info("done reading", slog.Int("groups", reg.Len()), slog.Int("dropped", res.Dropped))

	var buf bytes.Buffer
	stats, err := Write(&buf, reg, c.lineEnding)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrWrite, err)
		log.Error("render failed", slog.String("error", err.Error()))
		return res, err
	}

	res.RenderStats = stats

	if c.dryRun {
		if _, err := c.output.Write(buf.Bytes()); err != nil {
			err = fmt.Errorf("%w: dry run output: %w", ErrWrite, err)
			log.Error("write failed", slog.String("error", err.Error()))
			return res, err
		}
	} else if err := WriteFileAtomic(path, buf.Bytes()); err != nil {
		log.Error("write failed", slog.String("error", err.Error()))
		return res, err
	}

	log.Info("done writing",
		slog.Int("groups", stats.Groups),
		slog.Int("omitted", stats.Omitted),
		slog.Int("lines", stats.Lines),
		slog.Bool("dry_run", c.dryRun),
	)
	log.Info("finished consolidation")

	return res, nil
}

// ConsolidateFiles consolidates files in the given order.
//
// Processing continues after a failure. Returned results keep input order
// and all failures are joined into one error.
func (c *Consolidator) ConsolidateFiles(paths ...string) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	var errs []error
	for _, path := range paths {
		res, err := c.ConsolidateFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}

		results = append(results, res)
	}

	return results, errors.Join(errs...)
}
