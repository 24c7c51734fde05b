// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/kubedoc-tui/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewExporter_AssignsSessionID(t *testing.T) {
	a := NewExporter("")
	b := NewExporter("")

	if a.SessionID == "" {
		t.Fatal("session ID should not be empty")
	}
	if a.SessionID == b.SessionID {
		t.Error("exporters should get distinct session IDs")
	}
}

func TestWriteLastDocument(t *testing.T) {
	e := NewExporter(t.TempDir())
	e.Environment = "staging"
	e.now = fixedClock

	tr := model.NewTranscript("welcome")
	tr.AppendUser("deploy my app")
	tr.AppendAssistant("# Deploy\n\n```bash\nkubectl get pods\n```\n")

	path, err := e.WriteLastDocument(tr)
	if err != nil {
		t.Fatalf("WriteLastDocument: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "session: "+e.SessionID) {
		t.Error("export should carry the session ID")
	}
	if !strings.Contains(content, "environment: staging") {
		t.Error("export should carry the environment tag")
	}
	if !strings.Contains(content, "kubectl get pods") {
		t.Error("export should contain the document body")
	}
	if !strings.Contains(path, "kubedoc-doc-20250601-120000") {
		t.Errorf("unexpected file name %q", path)
	}
}

func TestWriteLastDocument_NoAssistantTurn(t *testing.T) {
	e := NewExporter(t.TempDir())

	tr := model.NewTranscript("welcome")
	if _, err := e.WriteLastDocument(tr); err == nil {
		t.Fatal("export should fail with no assistant document")
	}
}

func TestWriteLastDocument_RejectsMalformedDocument(t *testing.T) {
	e := NewExporter(t.TempDir())

	tr := model.NewTranscript("welcome")
	tr.AppendUser("q")
	tr.AppendAssistant("# Broken\n\n```bash\nnever closed\n")

	if _, err := e.WriteLastDocument(tr); err == nil {
		t.Fatal("export should reject a document with an unclosed fence")
	}
}

func TestWriteTranscript(t *testing.T) {
	e := NewExporter(t.TempDir())
	e.now = fixedClock

	tr := model.NewTranscript("Welcome!")
	tr.AppendUser("q")
	tr.AppendAssistant("a")

	path, err := e.WriteTranscript(tr)
	if err != nil {
		t.Fatalf("WriteTranscript: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "environment: default") {
		t.Error("empty environment should export as default")
	}
	if !strings.Contains(content, "You: q") || !strings.Contains(content, "Assistant: a") {
		t.Error("transcript export should use display form")
	}
}
