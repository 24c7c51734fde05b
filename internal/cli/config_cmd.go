// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler.
//
//   kubedoc config           Show the active configuration
//   kubedoc config show      Same as above
//   kubedoc config path      Print the config file location
//   kubedoc config set K V   Set a key and save
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jeranaias/kubedoc-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(out io.Writer, subcommand string, rest []string) error {
	switch subcommand {
	case "", "show":
		return showConfig(out)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
		return nil
	case "set":
		if len(rest) != 2 {
			return fmt.Errorf("config set needs a key and a value")
		}
		return setConfig(out, rest[0], rest[1])
	default:
		return fmt.Errorf("unknown config subcommand %q", subcommand)
	}
}

func showConfig(out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	env := cfg.Environment
	if env == "" {
		env = "(unset)"
	}
	exportDir := cfg.Export.Dir
	if exportDir == "" {
		exportDir = "(current directory)"
	}

	fmt.Fprintf(out, "environment:       %s\n", env)
	fmt.Fprintf(out, "input.char_limit:  %d\n", cfg.Input.CharLimit)
	fmt.Fprintf(out, "ui.title:          %s\n", cfg.UI.Title)
	fmt.Fprintf(out, "ui.syntax_highlight: %t\n", cfg.UI.SyntaxHighlight)
	fmt.Fprintf(out, "export.dir:        %s\n", exportDir)
	return nil
}

// setConfig updates one known key and writes the file back.
func setConfig(out io.Writer, key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "environment":
		cfg.Environment = value
	case "input.char_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: %s needs a number, got %q", key, value)
		}
		cfg.Input.CharLimit = n
	case "ui.title":
		cfg.UI.Title = value
	case "ui.syntax_highlight":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: %s needs a boolean, got %q", key, value)
		}
		cfg.UI.SyntaxHighlight = b
	case "export.dir":
		cfg.Export.Dir = value
	default:
		return fmt.Errorf("config: unknown key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s = %s\n", key, value)
	return nil
}
