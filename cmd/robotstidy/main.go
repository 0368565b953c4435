// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

// Command robotstidy consolidates robots.txt files in place.
//
// Without arguments it rewrites robots.txt in the current directory. I/O
// failures are logged and, unless --strict is set, do not change the exit
// status.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/woozymasta/robotstidy"
)

const version = "0.1.0"

// configPaths are YAML config files probed before flags are applied.
var configPaths = []string{"~/.config/robotstidy.yaml", ".robotstidy.yaml"}

// CLI defines the command-line interface for robotstidy.
type CLI struct {
	Paths []string `arg:"" optional:"" name:"path" help:"Robots files to consolidate" default:"${default_file}"`

	LineEnding string `name:"line-ending" help:"Output line ending (auto, lf, crlf)" default:"auto" enum:"auto,lf,crlf" env:"ROBOTSTIDY_LINE_ENDING"`
	DryRun     bool   `name:"dry-run" short:"n" help:"Print consolidated output to stdout instead of rewriting files"`
	Strict     bool   `help:"Exit with non-zero status when any file fails"`

	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error" env:"ROBOTSTIDY_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" default:"text" enum:"text,json" env:"ROBOTSTIDY_LOG_FORMAT"`

	Config  kong.ConfigFlag  `help:"Load flag values from YAML file"`
	Version kong.VersionFlag `help:"Print version information"`
}

// Run consolidates all configured paths and returns process exit status.
func (c *CLI) Run(stdout io.Writer, stderr io.Writer) int {
	logger := newLogger(stderr, c.LogLevel, c.LogFormat)

	lineEnding, err := robotstidy.ParseLineEnding(c.LineEnding)
	if err != nil {
		logger.Error("invalid options", slog.String("error", err.Error()))
		return 2
	}

	consolidator := robotstidy.New(robotstidy.Options{
		Logger:     logger,
		Output:     stdout,
		LineEnding: lineEnding,
		DryRun:     c.DryRun,
	})

	paths := c.Paths
	if len(paths) == 0 {
		paths = []string{robotstidy.DefaultFileName}
	}

	if _, err := consolidator.ConsolidateFiles(paths...); err != nil && c.Strict {
		return 1
	}

	return 0
}

// newParser builds the kong parser for cli, resolving flag values from the
// existing YAML files in configFiles.
func newParser(cli *CLI, configFiles []string, options ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("robotstidy"),
		kong.Description("Group robots.txt directives by user-agent and drop wildcard duplicates."),
		kong.UsageOnError(),
		kong.Configuration(yamlConfigLoader, configFiles...),
		kong.Vars{
			"version":      version,
			"default_file": robotstidy.DefaultFileName,
		},
	}

	return kong.New(cli, append(base, options...)...)
}

func main() {
	var cli CLI

	parser, err := newParser(&cli, configPaths)
	if err != nil {
		panic(err)
	}

	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	os.Exit(cli.Run(os.Stdout, os.Stderr))
}
