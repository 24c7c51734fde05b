// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/jeranaias/kubedoc-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the speaker of a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"

	// RoleSystem is used for the welcome turn and the post-clear reset turn.
	// System turns are rendered without a speaker prefix.
	RoleSystem Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// TURN TYPE
// =============================================================================

// Turn is a single transcript entry. Text is immutable once the turn has
// been appended to a transcript.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTurn creates a new turn with a generated ID.
func NewTurn(role Role, text string) *Turn {
	return &Turn{
		ID:        generateTurnID(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewUserTurn creates a new user turn.
func NewUserTurn(text string) *Turn {
	return NewTurn(RoleUser, text)
}

// NewAssistantTurn creates a new assistant turn.
func NewAssistantTurn(text string) *Turn {
	return NewTurn(RoleAssistant, text)
}

// NewSystemTurn creates a new system turn.
func NewSystemTurn(text string) *Turn {
	return NewTurn(RoleSystem, text)
}

// Display returns the turn formatted for the transcript view.
// User and assistant turns carry a speaker prefix; system turns do not.
func (t *Turn) Display() string {
	if t.Role == RoleSystem {
		return t.Text
	}
	return t.Role.DisplayName() + ": " + t.Text
}

// Preview returns a truncated single-line preview of the turn text.
// Uses rune-based truncation to handle Unicode correctly.
func (t *Turn) Preview(maxLen int) string {
	return util.TruncateRunes(t.Text, maxLen)
}

// IsEmpty returns true if the turn has no text.
func (t *Turn) IsEmpty() bool {
	return len(t.Text) == 0
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateTurnID creates a unique turn ID.
func generateTurnID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "turn_" + hex.EncodeToString(bytes)
}
