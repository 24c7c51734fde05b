// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kubedoc-tui/internal/model"
	"github.com/jeranaias/kubedoc-tui/internal/ui/styles"
)

// =============================================================================
// TRANSCRIPT VIEWPORT COMPONENT - Scrollable transcript area
// =============================================================================

// TranscriptViewport displays the session transcript. Its content is a
// derived cache of the transcript's joined display form: it is replaced
// wholesale after every transcript change and never edited in place.
type TranscriptViewport struct {
	viewport   viewport.Model
	width      int
	height     int
	autoScroll bool
	theme      *styles.Theme
}

// NewTranscriptViewport creates a viewport with auto-scroll enabled.
func NewTranscriptViewport(theme *styles.Theme) *TranscriptViewport {
	vp := viewport.New(80, 20)

	return &TranscriptViewport{
		viewport:   vp,
		width:      80,
		height:     20,
		autoScroll: true,
		theme:      theme,
	}
}

// SetSize updates the viewport dimensions and re-wraps content.
func (tv *TranscriptViewport) SetSize(width, height int) {
	tv.width = width
	tv.height = height
	tv.viewport.Width = width - 2
	tv.viewport.Height = height
	if tv.autoScroll {
		tv.viewport.GotoBottom()
	}
}

// SetTranscript replaces the viewport content with the transcript's
// joined display form and scrolls to the newest turn.
func (tv *TranscriptViewport) SetTranscript(tr *model.Transcript) {
	tv.viewport.SetContent(tv.renderTurns(tr))
	if tv.autoScroll {
		tv.viewport.GotoBottom()
	}
}

// renderTurns flattens the transcript for display: the same join the
// transcript itself produces, with speaker prefixes and system turns
// styled. The result stays a pure function of the turn sequence.
func (tv *TranscriptViewport) renderTurns(tr *model.Transcript) string {
	parts := make([]string, 0, tr.Len())
	for _, t := range tr.Turns() {
		switch t.Role {
		case model.RoleUser:
			parts = append(parts, tv.theme.UserPrefixText.Render(t.Role.DisplayName()+":")+" "+t.Text)
		case model.RoleAssistant:
			parts = append(parts, tv.theme.AssistPrefix.Render(t.Role.DisplayName()+":")+" "+t.Text)
		default:
			parts = append(parts, tv.theme.SystemTurnText.Render(t.Text))
		}
	}
	return strings.Join(parts, model.TurnSeparator)
}

// SetContent replaces the viewport content with pre-rendered text.
func (tv *TranscriptViewport) SetContent(content string) {
	tv.viewport.SetContent(content)
	if tv.autoScroll {
		tv.viewport.GotoBottom()
	}
}

// ScrollToBottom jumps to the newest content.
func (tv *TranscriptViewport) ScrollToBottom() {
	tv.viewport.GotoBottom()
}

// AtBottom reports whether the viewport shows the newest content.
func (tv *TranscriptViewport) AtBottom() bool {
	return tv.viewport.AtBottom()
}

// SetAutoScroll toggles follow-the-tail behavior. Manual scrolling up
// in the controller disables it; a new turn re-enables it.
func (tv *TranscriptViewport) SetAutoScroll(on bool) {
	tv.autoScroll = on
}

// Update forwards Bubble Tea messages (scroll keys, mouse wheel) to the
// underlying viewport.
func (tv *TranscriptViewport) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	tv.viewport, cmd = tv.viewport.Update(msg)
	return cmd
}

// View renders the framed viewport.
func (tv *TranscriptViewport) View() string {
	return tv.theme.ViewportFrame.Width(tv.width - 2).Render(tv.viewport.View())
}
