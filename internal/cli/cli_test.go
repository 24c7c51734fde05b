// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/kubedoc-tui/internal/export"
	"github.com/jeranaias/kubedoc-tui/internal/generator"
	"github.com/jeranaias/kubedoc-tui/internal/model"
)

// =============================================================================
// ARGUMENT PARSING TESTS
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		want    Command
		wantErr bool
	}{
		{"no args starts TUI", nil, CmdTUI, false},
		{"ask with query", []string{"ask", "how", "do", "I", "deploy"}, CmdAsk, false},
		{"ask without query fails", []string{"ask"}, CmdTUI, true},
		{"chat", []string{"chat"}, CmdChat, false},
		{"config", []string{"config", "show"}, CmdConfig, false},
		{"version", []string{"version"}, CmdVersion, false},
		{"version flag", []string{"--version"}, CmdVersion, false},
		{"help", []string{"help"}, CmdHelp, false},
		{"help flag", []string{"-h"}, CmdHelp, false},
		{"unknown command fails", []string{"frobnicate"}, CmdTUI, true},
		{"unknown flag fails", []string{"--frobnicate"}, CmdTUI, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args, err := Parse(tc.argv)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if args.Command != tc.want {
				t.Errorf("command = %d, want %d", args.Command, tc.want)
			}
		})
	}
}

func TestParse_AskJoinsWords(t *testing.T) {
	args, err := Parse([]string{"ask", "create", "a", "deployment"})
	if err != nil {
		t.Fatal(err)
	}
	if args.Query != "create a deployment" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParse_EnvironmentFlag(t *testing.T) {
	for _, argv := range [][]string{
		{"-e", "staging"},
		{"--environment", "staging"},
		{"--environment=staging"},
	} {
		args, err := Parse(argv)
		if err != nil {
			t.Fatalf("Parse(%v): %v", argv, err)
		}
		if args.Environment != "staging" {
			t.Errorf("Parse(%v) environment = %q", argv, args.Environment)
		}
	}

	if _, err := Parse([]string{"--environment"}); err == nil {
		t.Error("dangling --environment should fail")
	}
}

func TestParse_ConfigSubcommand(t *testing.T) {
	args, err := Parse([]string{"config", "set", "environment", "prod"})
	if err != nil {
		t.Fatal(err)
	}
	if args.Subcommand != "set" {
		t.Errorf("subcommand = %q", args.Subcommand)
	}
	if len(args.Raw) != 2 || args.Raw[0] != "environment" || args.Raw[1] != "prod" {
		t.Errorf("raw args = %v", args.Raw)
	}
}

// =============================================================================
// ASK COMMAND TESTS
// =============================================================================

func TestHandleAsk_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := HandleAsk(&buf, "create a deployment", true); err != nil {
		t.Fatalf("HandleAsk: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "kubectl create deployment") {
		t.Error("ask output should contain the deployment document")
	}
	if !strings.HasPrefix(out, "# ") {
		t.Error("plain output should be raw Markdown")
	}
}

func TestHandleAsk_UnmatchedQueryPrintsFallback(t *testing.T) {
	var buf bytes.Buffer
	if err := HandleAsk(&buf, "xyzzy", true); err != nil {
		t.Fatalf("HandleAsk: %v", err)
	}
	if !strings.Contains(buf.String(), "Quick Start") {
		t.Error("unmatched query should print the fallback document")
	}
}

// =============================================================================
// CHAT COMMAND TESTS
// =============================================================================

func TestChatCommand_SessionExport(t *testing.T) {
	dir := t.TempDir()
	gen := generator.New()
	tr := model.NewTranscript(chatWelcome)
	tr.AppendUser("create a deployment")
	tr.AppendAssistant(gen.Generate("create a deployment"))
	exporter := export.NewExporter(dir)

	if done := handleChatCommand("/session", tr, exporter, gen); done {
		t.Fatal("/session should not exit the REPL")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("export dir holds %d files, want 1", len(entries))
	}
	if !strings.Contains(entries[0].Name(), "session") {
		t.Errorf("export name = %q, want a session export", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "You: create a deployment") {
		t.Error("session export should hold the transcript in display form")
	}
}

// =============================================================================
// VERSION TESTS
// =============================================================================

func TestVersionString(t *testing.T) {
	s := VersionString()
	if !strings.Contains(s, "kubedoc") || !strings.Contains(s, Version) {
		t.Errorf("version string = %q", s)
	}
}
