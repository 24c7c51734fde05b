// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-based chat REPL for terminals where the full TUI is
// unwanted (ssh sessions, minimal terminals, scripting).
//
// Commands inside the REPL:
//   /save     export the newest document
//   /session  export the whole transcript
//   /clear    reset the session
//   /topics   list the supported topics
//   /help     show REPL help
//   /quit     exit
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/kubedoc-tui/internal/config"
	"github.com/jeranaias/kubedoc-tui/internal/export"
	"github.com/jeranaias/kubedoc-tui/internal/generator"
	"github.com/jeranaias/kubedoc-tui/internal/model"
	"github.com/jeranaias/kubedoc-tui/internal/ui/components"
	"github.com/jeranaias/kubedoc-tui/internal/ui/styles"
)

const chatWelcome = "kubedoc chat - ask about Kubernetes, /help for commands, /quit to exit"

// historyFile returns the REPL history path, or "" when no config
// directory is available.
func historyFile() string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chat_history")
}

// HandleChat runs the line-based REPL until /quit or EOF.
func HandleChat(cfg *config.Config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyFile()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer saveHistory(line, history)

	gen := generator.New()
	transcript := model.NewTranscript(chatWelcome)
	exporter := export.NewExporter(cfg.Export.Dir)
	exporter.Environment = cfg.Environment
	theme := styles.NewTheme()

	fmt.Println(chatWelcome)

	for {
		input, err := line.Prompt("kubedoc> ")
		if err != nil {
			// Ctrl+C and Ctrl+D both end the session.
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("chat: reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if done := handleChatCommand(input, transcript, exporter, gen); done {
				return nil
			}
			continue
		}

		transcript.AppendUser(input)
		doc := gen.Generate(input)
		transcript.AppendAssistant(doc)

		if cfg.UI.SyntaxHighlight && IsStdoutTTY() {
			fmt.Println(components.RenderFences(theme, doc))
		} else {
			fmt.Println(doc)
		}
	}
}

// handleChatCommand executes one slash command. It returns true when
// the REPL should exit.
func handleChatCommand(input string, tr *model.Transcript, exporter *export.Exporter, gen *generator.Generator) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		return true

	case "/clear":
		tr.Reset(chatWelcome)
		fmt.Println("session cleared")

	case "/save":
		path, err := exporter.WriteLastDocument(tr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
			break
		}
		fmt.Printf("saved %s\n", path)

	case "/session":
		path, err := exporter.WriteTranscript(tr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "session export failed: %v\n", err)
			break
		}
		fmt.Printf("saved %s\n", path)

	case "/topics":
		fmt.Println("topics: " + strings.Join(gen.Topics(), ", "))

	case "/help":
		fmt.Println("/save export newest document, /session export transcript, /clear reset session, /topics list topics, /quit exit")

	default:
		fmt.Printf("unknown command %s, try /help\n", input)
	}
	return false
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
