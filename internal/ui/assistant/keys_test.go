// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestResolveAction(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name      string
		msg       tea.KeyMsg
		want      Action
		wantQuery string
	}{
		{"ctrl+s sends", keyMsg(tea.KeyCtrlS), ActionSend, ""},
		{"ctrl+c quits", keyMsg(tea.KeyCtrlC), ActionQuit, ""},
		{"esc quits", keyMsg(tea.KeyEsc), ActionQuit, ""},
		{"ctrl+l clears", keyMsg(tea.KeyCtrlL), ActionClear, ""},
		{"ctrl+e exports", keyMsg(tea.KeyCtrlE), ActionExport, ""},
		{"f1 deployment query", keyMsg(tea.KeyF1), ActionQuickQuery, QuickQueries[0]},
		{"f2 service query", keyMsg(tea.KeyF2), ActionQuickQuery, QuickQueries[1]},
		{"f3 ingress query", keyMsg(tea.KeyF3), ActionQuickQuery, QuickQueries[2]},
		{"plain rune falls through", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, ActionNone, ""},
		{"enter falls through", keyMsg(tea.KeyEnter), ActionNone, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, query := k.ResolveAction(tc.msg)
			if action != tc.want {
				t.Errorf("action = %d, want %d", action, tc.want)
			}
			if query != tc.wantQuery {
				t.Errorf("query = %q, want %q", query, tc.wantQuery)
			}
		})
	}
}

func TestQuickQueries_MatchBindingCount(t *testing.T) {
	if len(QuickQueries) != 3 {
		t.Fatalf("got %d quick queries, want 3", len(QuickQueries))
	}
	for i, q := range QuickQueries {
		if q == "" {
			t.Errorf("quick query %d is empty", i)
		}
	}
}

func TestKeyMap_HelpViews(t *testing.T) {
	k := DefaultKeyMap()

	if len(k.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
	if len(k.FullHelp()) == 0 {
		t.Error("full help should not be empty")
	}
}
