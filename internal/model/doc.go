// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the assistant transcript.
//
// A Transcript is an append-only sequence of Turns. The transcript is the
// single source of truth for the conversation: the viewport only ever
// displays the string produced by Transcript.Join, so the rendered view can
// always be recomputed and nothing needs to be persisted alongside it.
//
// The transcript always contains at least one turn. Clearing it does not
// empty the sequence; it replaces the whole sequence with a single system
// turn so the user is never looking at a blank screen.
package model
