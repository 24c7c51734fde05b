// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for kubedoc.
package cli

import (
	"fmt"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	Command Command

	// Environment overrides the configured deployment environment tag.
	Environment string

	// Query is the question for the ask command.
	Query string

	// Subcommand and its arguments for config.
	Subcommand string
	Raw        []string

	// Plain disables Markdown rendering even on a TTY.
	Plain bool
}

const usageText = `kubedoc - Kubernetes assistant for executable documents

Kubedoc answers Kubernetes questions with executable Markdown documents:
step-by-step guides whose fenced bash and yaml blocks can be run in
order by a document runner.

Usage:
  kubedoc                      Start the interactive TUI (default)
  kubedoc ask "question"       Ask a single question, print the document
  kubedoc chat                 Line-based chat REPL
  kubedoc config [show|set|path]  Configuration management
  kubedoc version              Show version information
  kubedoc help                 Show this help

Flags:
  --environment NAME, -e NAME  Tag the session with an environment
  --plain                      Print raw Markdown, skip rendering

TUI keys:
  Ctrl+S  send query           F1  deployment quick action
  Ctrl+L  clear session        F2  service quick action
  Ctrl+E  export document      F3  ingress quick action
  Esc     quit

Environment variables:
  KUBEDOC_ENV                  Deployment environment tag
  KUBEDOC_EXPORT_DIR           Directory for exported documents
  KUBEDOC_CHAR_LIMIT           Query length limit
`

// Usage returns the top-level help text.
func Usage() string {
	return usageText
}

// VersionString formats the build information.
func VersionString() string {
	return fmt.Sprintf("kubedoc %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

// Parse interprets os.Args[1:]. Unknown flags are errors; unknown bare
// words are treated as an implicit ask query only when they follow the
// ask command.
func Parse(argv []string) (*Args, error) {
	args := &Args{Command: CmdTUI}

	var positional []string
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--environment" || arg == "-e":
			if i+1 >= len(argv) {
				return nil, fmt.Errorf("%s needs a value", arg)
			}
			i++
			args.Environment = argv[i]
		case strings.HasPrefix(arg, "--environment="):
			args.Environment = strings.TrimPrefix(arg, "--environment=")
		case arg == "--plain":
			args.Plain = true
		case arg == "--help" || arg == "-h":
			args.Command = CmdHelp
			return args, nil
		case arg == "--version":
			args.Command = CmdVersion
			return args, nil
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown flag %q", arg)
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		return args, nil
	}

	switch positional[0] {
	case "ask":
		args.Command = CmdAsk
		if len(positional) < 2 {
			return nil, fmt.Errorf("ask needs a question")
		}
		args.Query = strings.Join(positional[1:], " ")
	case "chat":
		args.Command = CmdChat
	case "config":
		args.Command = CmdConfig
		if len(positional) > 1 {
			args.Subcommand = positional[1]
			args.Raw = positional[2:]
		}
	case "version":
		args.Command = CmdVersion
	case "help":
		args.Command = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command %q", positional[0])
	}

	return args, nil
}
