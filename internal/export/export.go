// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/kubedoc-tui/internal/document"
	"github.com/jeranaias/kubedoc-tui/internal/model"
)

// =============================================================================
// EXPORTER
// =============================================================================

// Exporter writes session artifacts to a directory. The zero directory
// means the current working directory.
type Exporter struct {
	// Dir is the target directory. It is created on first write.
	Dir string

	// Environment tags exports with the deployment environment the
	// session was run against. Empty is allowed.
	Environment string

	// SessionID identifies the session across all of its exports.
	SessionID string

	now func() time.Time
}

// NewExporter creates an exporter with a fresh session ID.
func NewExporter(dir string) *Exporter {
	return &Exporter{
		Dir:       dir,
		SessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// header renders the metadata comment that opens every export.
func (e *Exporter) header() string {
	env := e.Environment
	if env == "" {
		env = "default"
	}
	return fmt.Sprintf(
		"<!--\nkubedoc export\nsession: %s\nenvironment: %s\nexported: %s\n-->\n\n",
		e.SessionID, env, e.now().UTC().Format(time.RFC3339),
	)
}

// filename builds a collision-resistant export file name from the
// export time and the session ID.
func (e *Exporter) filename(kind string) string {
	short := e.SessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("kubedoc-%s-%s-%s.md", kind, e.now().UTC().Format("20060102-150405"), short)
}

// write creates the target directory if needed and writes one file.
func (e *Exporter) write(name, content string) (string, error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: creating %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("export: writing %s: %w", path, err)
	}
	return path, nil
}

// =============================================================================
// EXPORT OPERATIONS
// =============================================================================

// WriteLastDocument exports the newest assistant document from the
// transcript. The document is parsed first so a malformed document is
// rejected instead of handed to a runner.
func (e *Exporter) WriteLastDocument(tr *model.Transcript) (string, error) {
	turn := tr.LastAssistant()
	if turn == nil {
		return "", fmt.Errorf("export: no assistant document in session")
	}

	if _, err := document.Parse(turn.Text); err != nil {
		return "", err
	}

	return e.write(e.filename("doc"), e.header()+turn.Text)
}

// WriteTranscript exports the whole transcript in display form.
func (e *Exporter) WriteTranscript(tr *model.Transcript) (string, error) {
	return e.write(e.filename("session"), e.header()+tr.Join()+"\n")
}
