// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing and the non-TUI command
// surfaces of kubedoc: one-shot ask, the line-based chat REPL, and
// config management.
package cli
