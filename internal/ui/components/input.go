// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kubedoc-tui/internal/ui/styles"
)

// DefaultCharLimit caps query length. Queries are keyword-matched, so
// anything longer adds no signal.
const DefaultCharLimit = 500

// DefaultPlaceholder is shown in the empty input.
const DefaultPlaceholder = "Ask me about Kubernetes deployment tasks..."

// =============================================================================
// PROMPT INPUT COMPONENT - Multiline query input with character counter
// =============================================================================

// PromptInput is the styled query input at the bottom of the session.
type PromptInput struct {
	textarea  textarea.Model
	charLimit int
	width     int
	theme     *styles.Theme
}

// NewPromptInput creates a focused prompt input with the default
// placeholder and character limit.
func NewPromptInput(theme *styles.Theme) *PromptInput {
	ta := textarea.New()
	ta.Placeholder = DefaultPlaceholder
	ta.CharLimit = DefaultCharLimit
	ta.SetWidth(76)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.Placeholder = theme.InputPlaceholder
	ta.BlurredStyle.Placeholder = theme.InputPlaceholder
	ta.FocusedStyle.Prompt = theme.InputPrompt
	ta.BlurredStyle.Prompt = theme.InputPrompt
	ta.Focus()

	return &PromptInput{
		textarea:  ta,
		charLimit: DefaultCharLimit,
		width:     80,
		theme:     theme,
	}
}

// Focus focuses the input and returns the blink command.
func (p *PromptInput) Focus() tea.Cmd {
	return p.textarea.Focus()
}

// Blur removes focus from the input.
func (p *PromptInput) Blur() {
	p.textarea.Blur()
}

// Focused reports whether the input has focus.
func (p *PromptInput) Focused() bool {
	return p.textarea.Focused()
}

// Value returns the current input text.
func (p *PromptInput) Value() string {
	return p.textarea.Value()
}

// SetValue replaces the input text.
func (p *PromptInput) SetValue(value string) {
	p.textarea.SetValue(value)
}

// Reset clears the input.
func (p *PromptInput) Reset() {
	p.textarea.Reset()
}

// Empty reports whether the input holds only whitespace. Empty input
// must not produce a query.
func (p *PromptInput) Empty() bool {
	return strings.TrimSpace(p.textarea.Value()) == ""
}

// SetWidth resizes the input to the given outer width.
func (p *PromptInput) SetWidth(width int) {
	p.width = width
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	p.textarea.SetWidth(inner)
}

// SetCharLimit overrides the character limit. Zero keeps the default.
func (p *PromptInput) SetCharLimit(limit int) {
	if limit <= 0 {
		return
	}
	p.charLimit = limit
	p.textarea.CharLimit = limit
}

// CharLimit returns the active character limit.
func (p *PromptInput) CharLimit() int {
	return p.charLimit
}

// Update forwards Bubble Tea messages to the underlying textarea.
func (p *PromptInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.textarea, cmd = p.textarea.Update(msg)
	return cmd
}

// Blink returns the cursor blink command for program init.
func (p *PromptInput) Blink() tea.Cmd {
	return textarea.Blink
}

// counter renders the "123/500" character counter, colored by how close
// the input is to the limit.
func (p *PromptInput) counter() string {
	length := len([]rune(p.textarea.Value()))
	style := p.theme.CharCountStyle(length, p.charLimit)
	return style.Render(fmt.Sprintf("%d/%d", length, p.charLimit))
}

// View renders the framed input with its counter line.
func (p *PromptInput) View() string {
	frame := p.theme.InputFrame.Width(p.width - 2)
	return frame.Render(p.textarea.View()) + "\n" + p.counter()
}
