// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/kubedoc-tui/internal/ui/styles"
	"github.com/jeranaias/kubedoc-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - Title bar with environment tag
// =============================================================================

// Header is the one-line title bar above the transcript.
type Header struct {
	title       string
	environment string
	width       int
	theme       *styles.Theme
}

// NewHeader creates a header with the given title.
func NewHeader(theme *styles.Theme, title string) *Header {
	return &Header{
		title: title,
		width: 80,
		theme: theme,
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle replaces the header text. Empty keeps the current title.
func (h *Header) SetTitle(title string) {
	if title == "" {
		return
	}
	h.title = title
}

// SetEnvironment sets the environment tag shown on the right edge.
// Empty hides the tag.
func (h *Header) SetEnvironment(env string) {
	h.environment = env
}

// View renders the header line.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render(h.title)

	if h.environment == "" {
		return title
	}

	tag := h.theme.EnvironmentTag.Render("[" + h.environment + "]")
	gap := h.width - util.StringWidth(h.title) - util.StringWidth("["+h.environment+"]")
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, util.PadRight("", gap), tag)
}
