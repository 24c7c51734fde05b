// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/kubedoc-tui/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock renders one fenced block from an executable document with
// syntax highlighting and a language badge.
type CodeBlock struct {
	Language string
	Code     string
	theme    *styles.Theme
}

// NewCodeBlock creates a code block renderer.
func NewCodeBlock(theme *styles.Theme, language, code string) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		theme:    theme,
	}
}

// Render returns the highlighted block with its badge line.
func (c CodeBlock) Render() string {
	code := strings.TrimRight(c.Code, "\n")
	highlighted := HighlightCode(code, c.Language)

	var b strings.Builder
	if c.Language != "" {
		b.WriteString(c.theme.CodeLangBadge.Render(c.Language))
		b.WriteString("\n")
	}
	b.WriteString(c.theme.CodeBlock.Render(highlighted))
	return b.String()
}

// HighlightCode applies chroma terminal highlighting to source code.
// On any failure it returns the code unchanged; display must never
// break on odd input.
func HighlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		return code
	}

	style := chromaStyles.Get("monokai")
	formatter := formatters.Get("terminal256")
	if style == nil || formatter == nil {
		return code
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return code
	}
	return b.String()
}

// RenderFences rewrites the fenced blocks of a Markdown document into
// highlighted, badged blocks for terminal display. Prose lines pass
// through untouched.
func RenderFences(theme *styles.Theme, markdown string) string {
	lines := strings.Split(markdown, "\n")

	var out []string
	var body []string
	var language string
	inFence := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inFence && strings.HasPrefix(trimmed, "```"):
			inFence = true
			language = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			body = body[:0]
		case inFence && trimmed == "```":
			inFence = false
			cb := NewCodeBlock(theme, language, strings.Join(body, "\n"))
			out = append(out, cb.Render())
		case inFence:
			body = append(body, line)
		default:
			out = append(out, line)
		}
	}

	// An unclosed fence is rendered as-is rather than dropped.
	if inFence {
		out = append(out, "```"+language)
		out = append(out, body...)
	}

	return strings.Join(out, "\n")
}
