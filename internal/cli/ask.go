// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for the kubedoc CLI.
//
// Handles "kubedoc ask", which answers one question and prints the
// executable document to stdout.
//
// Examples:
//   kubedoc ask "How do I create a deployment?"
//   kubedoc ask --plain "service setup" > service.md
package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/kubedoc-tui/internal/generator"
)

// HandleAsk generates the document for a single query and writes it to
// out, rendered for terminals unless plain output is requested.
func HandleAsk(out io.Writer, query string, plain bool) error {
	gen := generator.New()
	doc := gen.Generate(query)

	if plain {
		_, err := fmt.Fprint(out, doc)
		return err
	}

	_, err := fmt.Fprint(out, RenderMarkdown(doc))
	return err
}
