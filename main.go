// kubedoc - A terminal assistant that answers Kubernetes questions
// with executable Markdown documents.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kubedoc-tui/internal/cli"
	"github.com/jeranaias/kubedoc-tui/internal/config"
	"github.com/jeranaias/kubedoc-tui/internal/ui/assistant"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, cli.Usage())
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if args.Environment != "" {
		cfg.Environment = args.Environment
	}

	switch args.Command {
	case cli.CmdTUI:
		if err := runTUI(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdAsk:
		if err := cli.HandleAsk(os.Stdout, args.Query, args.Plain); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdChat:
		if err := cli.HandleChat(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdConfig:
		if err := cli.HandleConfig(os.Stdout, args.Subcommand, args.Raw); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		fmt.Println(cli.VersionString())
	case cli.CmdHelp:
		fmt.Print(cli.Usage())
	}
}

// runTUI starts the interactive session and keeps it in sync with
// config file edits for the lifetime of the program.
func runTUI(cfg *config.Config) error {
	m := assistant.New(
		assistant.WithEnvironment(cfg.Environment),
		assistant.WithTitle(cfg.UI.Title),
		assistant.WithCharLimit(cfg.Input.CharLimit),
		assistant.WithExportDir(cfg.Export.Dir),
	)

	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchConfig(ctx, p)

	_, err := p.Run()
	return err
}

// watchConfig feeds config file changes into the running session.
// Watcher setup failures are ignored: live reload is a convenience,
// not a requirement.
func watchConfig(ctx context.Context, p *tea.Program) {
	path, err := config.ConfigPath()
	if err != nil {
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		return
	}

	w, err := config.NewWatcher(path, func(cfg *config.Config) {
		p.Send(assistant.SettingsMsg{
			Environment: cfg.Environment,
			Title:       cfg.UI.Title,
			CharLimit:   cfg.Input.CharLimit,
			ExportDir:   cfg.Export.Dir,
		})
	}, nil)
	if err != nil {
		return
	}
	w.Run(ctx)
}
