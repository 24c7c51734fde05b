// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package document

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// fenceDelimiter opens and closes code blocks.
const fenceDelimiter = "```"

// =============================================================================
// BLOCK TYPE
// =============================================================================

// Block is one fenced code block extracted from a document.
type Block struct {
	// Lang is the fence's language tag, lowercased ("bash", "yaml").
	Lang string

	// Code is the block body without the fence lines. It keeps the
	// original line breaks and ends without a trailing newline.
	Code string

	// Line is the 1-based line number of the opening fence.
	Line int
}

// Runnable reports whether the block holds shell commands a document
// runner would execute, as opposed to a manifest or plain text.
func (b Block) Runnable() bool {
	switch b.Lang {
	case "bash", "sh", "shell":
		return true
	}
	return false
}

// =============================================================================
// DOCUMENT TYPE
// =============================================================================

// Document is a parsed executable document.
type Document struct {
	// Title is the text of the first top-level heading, or "" if the
	// document has none.
	Title string

	// Blocks are the fenced code blocks in document order.
	Blocks []Block

	raw string
}

// Raw returns the original Markdown source.
func (d *Document) Raw() string {
	return d.raw
}

// Commands returns the bodies of all runnable blocks, in order. This is
// what a document runner would execute step by step.
func (d *Document) Commands() []string {
	var cmds []string
	for _, b := range d.Blocks {
		if b.Runnable() {
			cmds = append(cmds, b.Code)
		}
	}
	return cmds
}

// Manifests returns the bodies of all yaml blocks, in order.
func (d *Document) Manifests() []string {
	var out []string
	for _, b := range d.Blocks {
		if b.Lang == "yaml" || b.Lang == "yml" {
			out = append(out, b.Code)
		}
	}
	return out
}

// =============================================================================
// PARSING
// =============================================================================

// Parse extracts the title and fenced code blocks from Markdown source.
// It fails if a fence is left open at end of input.
func Parse(markdown string) (*Document, error) {
	doc := &Document{raw: markdown}

	lines := strings.Split(markdown, "\n")
	inFence := false
	var current Block
	var body []string

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case !inFence && strings.HasPrefix(trimmed, fenceDelimiter):
			inFence = true
			current = Block{
				Lang: strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, fenceDelimiter))),
				Line: i + 1,
			}
			body = body[:0]

		case inFence && trimmed == fenceDelimiter:
			inFence = false
			current.Code = strings.Join(body, "\n")
			doc.Blocks = append(doc.Blocks, current)

		case inFence:
			body = append(body, line)

		case doc.Title == "" && strings.HasPrefix(trimmed, "# "):
			doc.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}

	if inFence {
		return nil, fmt.Errorf("document: fence opened at line %d is never closed", current.Line)
	}
	return doc, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks that a parsed document is well-formed enough to hand
// to a document runner: it has a title, every block carries a language
// tag the highlighter recognizes, and no block is empty.
func (d *Document) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("document: missing top-level heading")
	}

	for _, b := range d.Blocks {
		if b.Lang == "" {
			return fmt.Errorf("document: untagged fence at line %d", b.Line)
		}
		if lexers.Get(b.Lang) == nil {
			return fmt.Errorf("document: unknown language %q at line %d", b.Lang, b.Line)
		}
		if strings.TrimSpace(b.Code) == "" {
			return fmt.Errorf("document: empty %s block at line %d", b.Lang, b.Line)
		}
	}
	return nil
}
