// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the kubedoc
// TUI: the prompt input with its character counter, the scrollable
// transcript viewport, the header bar, and code block rendering.
//
// Components own their Bubbles models and expose a small surface to the
// session controller; they never touch the transcript or generator
// directly.
package components
