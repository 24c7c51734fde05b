// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// readyModel returns a model that has received its first size message.
func readyModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	m := New(opts...)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// typeString feeds each rune to the model as a key event.
func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// =============================================================================
// LIFECYCLE TESTS
// =============================================================================

func TestModel_StartsUninitialized(t *testing.T) {
	m := New()

	if !strings.Contains(m.View(), "Starting") {
		t.Error("uninitialized model should show the startup view")
	}

	// Typing before the first size message is ignored.
	typeString(m, "hello")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Transcript().Len() != 1 {
		t.Error("events before ready should not grow the transcript")
	}
}

func TestModel_ReadyAfterWindowSize(t *testing.T) {
	m := readyModel(t)

	view := m.View()
	if !strings.Contains(view, "Kubernetes Assistant") {
		t.Error("ready view should show the header")
	}
	if !strings.Contains(view, "Welcome!") {
		t.Error("ready view should show the welcome turn")
	}
}

func TestModel_QuitWorksBeforeReady(t *testing.T) {
	m := New()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command even before ready")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}

func TestModel_QuitClosesSession(t *testing.T) {
	m := readyModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("closed session should render nothing")
	}
}

// =============================================================================
// QUERY FLOW TESTS
// =============================================================================

func TestModel_SendAppendsTwoTurns(t *testing.T) {
	m := readyModel(t)

	typeString(m, "how do I deploy")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if got := m.Transcript().Len(); got != 3 {
		t.Fatalf("transcript length = %d, want 3", got)
	}
	if m.Transcript().LastUser().Text != "how do I deploy" {
		t.Errorf("user turn = %q", m.Transcript().LastUser().Text)
	}
	if !strings.Contains(m.Transcript().LastAssistant().Text, "kubectl create deployment") {
		t.Error("assistant turn should hold the generated document")
	}
}

func TestModel_SendClearsInput(t *testing.T) {
	m := readyModel(t)

	typeString(m, "deploy it")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if !m.input.Empty() {
		t.Error("input should be cleared after send")
	}
}

func TestModel_EmptySendIsNoOp(t *testing.T) {
	m := readyModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Transcript().Len() != 1 {
		t.Error("sending an empty buffer should not grow the transcript")
	}

	typeString(m, "   ")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Transcript().Len() != 1 {
		t.Error("sending whitespace should not grow the transcript")
	}
}

func TestModel_TranscriptGrowsByPairs(t *testing.T) {
	m := readyModel(t)

	queries := []string{"deploy", "service please", "ingress setup"}
	for _, q := range queries {
		typeString(m, q)
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	}

	// One welcome turn plus a user/assistant pair per query.
	want := 1 + 2*len(queries)
	if got := m.Transcript().Len(); got != want {
		t.Errorf("transcript length = %d, want %d", got, want)
	}
}

// =============================================================================
// QUICK ACTION TESTS
// =============================================================================

func TestModel_QuickActionLeavesDraftUntouched(t *testing.T) {
	m := readyModel(t)

	typeString(m, "my unfinished draft")
	m.Update(tea.KeyMsg{Type: tea.KeyF1})

	if got := m.Transcript().Len(); got != 3 {
		t.Fatalf("transcript length = %d, want 3", got)
	}
	if m.Transcript().LastUser().Text != QuickQueries[0] {
		t.Errorf("quick action should submit its fixed query, got %q", m.Transcript().LastUser().Text)
	}
	if m.input.Value() != "my unfinished draft" {
		t.Errorf("draft should survive a quick action, got %q", m.input.Value())
	}
}

func TestModel_QuickActionsProduceDistinctTopics(t *testing.T) {
	m := readyModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyF2})
	if !strings.Contains(m.Transcript().LastAssistant().Text, "kind: Service") {
		t.Error("F2 should produce the service document")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyF3})
	if !strings.Contains(m.Transcript().LastAssistant().Text, "ingress-nginx") {
		t.Error("F3 should produce the ingress document")
	}
}

// =============================================================================
// CLEAR AND RESIZE TESTS
// =============================================================================

func TestModel_ClearResetsSession(t *testing.T) {
	m := readyModel(t)

	typeString(m, "deploy")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	typeString(m, "half-typed")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	if m.Transcript().Len() != 1 {
		t.Errorf("cleared transcript length = %d, want 1", m.Transcript().Len())
	}
	if !m.input.Empty() {
		t.Error("clear should also empty the input buffer")
	}
}

func TestModel_ResizeWhileReadyKeepsTranscript(t *testing.T) {
	m := readyModel(t)

	typeString(m, "deploy")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})

	if m.Transcript().Len() != 3 {
		t.Error("resizing should not alter the transcript")
	}
	if !strings.Contains(m.View(), "You: deploy") {
		t.Error("resized view should still show the transcript")
	}
}

// =============================================================================
// ENVIRONMENT TAG TESTS
// =============================================================================

func TestModel_EnvironmentShowsInHeader(t *testing.T) {
	m := readyModel(t, WithEnvironment("staging"))

	if !strings.Contains(m.View(), "[staging]") {
		t.Error("header should show the environment tag")
	}
}

func TestModel_TitleFromConfig(t *testing.T) {
	m := readyModel(t, WithTitle("Cluster Helper"))

	if !strings.Contains(m.View(), "Cluster Helper") {
		t.Error("configured title should show in the header")
	}

	m.Update(SettingsMsg{Title: "Renamed"})
	if !strings.Contains(m.View(), "Renamed") {
		t.Error("reloaded title should show in the header")
	}
}

func TestModel_ScrollBackPausesFollow(t *testing.T) {
	m := readyModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	for i := 0; i < 4; i++ {
		typeString(m, "deploy")
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	}
	if !m.viewport.AtBottom() {
		t.Fatal("new turns should land with the viewport at the bottom")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	if m.viewport.AtBottom() {
		t.Fatal("page up should scroll away from the bottom")
	}

	typeString(m, "service")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.viewport.AtBottom() {
		t.Error("a new turn should snap back to the newest content")
	}
}

func TestModel_SettingsReloadKeepsSession(t *testing.T) {
	m := readyModel(t)

	typeString(m, "deploy")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	typeString(m, "draft in progress")

	m.Update(SettingsMsg{Environment: "prod", CharLimit: 300, ExportDir: "/tmp/exports"})

	if !strings.Contains(m.View(), "[prod]") {
		t.Error("reload should update the environment tag")
	}
	if m.input.CharLimit() != 300 {
		t.Errorf("char limit = %d, want 300", m.input.CharLimit())
	}
	if m.Transcript().Len() != 3 {
		t.Error("reload should not disturb the transcript")
	}
	if m.input.Value() != "draft in progress" {
		t.Error("reload should not disturb the draft")
	}
}
