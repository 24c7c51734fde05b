// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the assistant session.
// Each binding supports multiple keys and includes help text.
type KeyMap struct {
	Send   key.Binding
	Quit   key.Binding
	Clear  key.Binding
	Export key.Binding
	Help   key.Binding
	Quick1 key.Binding
	Quick2 key.Binding
	Quick3 key.Binding
}

// DefaultKeyMap returns the default key bindings for the session.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "send query"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("Esc/C-c", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear session"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "export document"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "toggle help"),
		),
		Quick1: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "deployment"),
		),
		Quick2: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "service"),
		),
		Quick3: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "ingress"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Quick1, k.Quick2, k.Quick3, k.Clear, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Clear, k.Export},
		{k.Quick1, k.Quick2, k.Quick3},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// ACTION RESOLUTION
// =============================================================================

// Action is what a key event resolves to. A key event resolves to
// exactly one action; keys bound to no action fall through to the
// focused component as ordinary input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionClear
	ActionSend
	ActionExport
	ActionToggleHelp
	ActionQuickQuery
)

// QuickQueries are the fixed queries behind the function keys, in
// binding order (F1, F2, F3).
var QuickQueries = []string{
	"Create a deployment for my application",
	"Create a Kubernetes service",
	"Set up ingress controller",
}

// ResolveAction maps a key event to its action. Precedence is fixed:
// quit over clear over send over export over help over quick actions.
// It returns the quick query text for ActionQuickQuery, "" otherwise.
func (k KeyMap) ResolveAction(msg tea.KeyMsg) (Action, string) {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit, ""
	case key.Matches(msg, k.Clear):
		return ActionClear, ""
	case key.Matches(msg, k.Send):
		return ActionSend, ""
	case key.Matches(msg, k.Export):
		return ActionExport, ""
	case key.Matches(msg, k.Help):
		return ActionToggleHelp, ""
	case key.Matches(msg, k.Quick1):
		return ActionQuickQuery, QuickQueries[0]
	case key.Matches(msg, k.Quick2):
		return ActionQuickQuery, QuickQueries[1]
	case key.Matches(msg, k.Quick3):
		return ActionQuickQuery, QuickQueries[2]
	}
	return ActionNone, ""
}
