// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant implements the interactive session: the Bubble Tea
// model that owns the transcript, the prompt input, the transcript
// viewport, and the keymap.
//
// The session is a small state machine. It starts uninitialized, flips
// to ready on the first window size message, and closes on quit. Every
// key event resolves to at most one action before any component sees
// it, so a single keystroke can never both submit a query and type a
// character.
package assistant
