// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// TurnSeparator joins turns in the rendered transcript. One blank line
// between entries keeps the generated documents readable in the viewport.
const TurnSeparator = "\n\n"

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered conversation history for one session.
//
// Invariant: a transcript always contains at least one turn. The
// constructor seeds it with a welcome turn and Reset replaces the whole
// sequence with a single system turn.
type Transcript struct {
	turns     []*Turn
	updatedAt time.Time
}

// NewTranscript creates a transcript seeded with the given welcome text
// as a system turn.
func NewTranscript(welcome string) *Transcript {
	return &Transcript{
		turns:     []*Turn{NewSystemTurn(welcome)},
		updatedAt: time.Now(),
	}
}

// =============================================================================
// TURN MANAGEMENT
// =============================================================================

// Append adds a turn to the transcript.
func (tr *Transcript) Append(t *Turn) {
	tr.turns = append(tr.turns, t)
	tr.updatedAt = time.Now()
}

// AppendUser creates and appends a user turn.
func (tr *Transcript) AppendUser(text string) *Turn {
	t := NewUserTurn(text)
	tr.Append(t)
	return t
}

// AppendAssistant creates and appends an assistant turn.
func (tr *Transcript) AppendAssistant(text string) *Turn {
	t := NewAssistantTurn(text)
	tr.Append(t)
	return t
}

// Reset replaces the whole transcript with a single system turn.
// This is the only mutation besides Append; individual turns are never
// edited or removed.
func (tr *Transcript) Reset(text string) {
	tr.turns = []*Turn{NewSystemTurn(text)}
	tr.updatedAt = time.Now()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Len returns the number of turns.
func (tr *Transcript) Len() int {
	return len(tr.turns)
}

// Turns returns the turn history in insertion order.
// Callers must not mutate the returned slice.
func (tr *Transcript) Turns() []*Turn {
	return tr.turns
}

// Last returns the most recent turn. The transcript invariant guarantees
// there always is one.
func (tr *Transcript) Last() *Turn {
	return tr.turns[len(tr.turns)-1]
}

// LastAssistant returns the most recent assistant turn, or nil if the
// session has not produced one yet.
func (tr *Transcript) LastAssistant() *Turn {
	for i := len(tr.turns) - 1; i >= 0; i-- {
		if tr.turns[i].Role == RoleAssistant {
			return tr.turns[i]
		}
	}
	return nil
}

// LastUser returns the most recent user turn, or nil.
func (tr *Transcript) LastUser() *Turn {
	for i := len(tr.turns) - 1; i >= 0; i-- {
		if tr.turns[i].Role == RoleUser {
			return tr.turns[i]
		}
	}
	return nil
}

// UpdatedAt returns the time of the last mutation.
func (tr *Transcript) UpdatedAt() time.Time {
	return tr.updatedAt
}

// =============================================================================
// RENDERING
// =============================================================================

// Join flattens the transcript into the string displayed by the viewport:
// each turn's display form, joined by blank lines, in insertion order. The
// result is a pure function of the turn sequence, so the view can always be
// rebuilt from the transcript alone.
func (tr *Transcript) Join() string {
	parts := make([]string, 0, len(tr.turns))
	for _, t := range tr.turns {
		parts = append(parts, t.Display())
	}
	return strings.Join(parts, TurnSeparator)
}
