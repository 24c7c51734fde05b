// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kubedoc-tui/internal/export"
	"github.com/jeranaias/kubedoc-tui/internal/generator"
	"github.com/jeranaias/kubedoc-tui/internal/model"
	"github.com/jeranaias/kubedoc-tui/internal/ui/components"
	"github.com/jeranaias/kubedoc-tui/internal/ui/styles"
)

// WelcomeText seeds every new and cleared session.
const WelcomeText = "Welcome! I'm your Kubernetes assistant. Ask me about deployments, " +
	"services, ingress, storage, or monitoring, and I'll answer with an " +
	"executable document you can hand to your document runner."

// clearedText replaces the transcript when the session is cleared.
const clearedText = "Session cleared. Ask me anything about Kubernetes."

// SettingsMsg carries externally reloaded settings into a running
// session, typically from the config file watcher.
type SettingsMsg struct {
	Environment string
	Title       string
	CharLimit   int
	ExportDir   string
}

// sessionState tracks the session lifecycle.
type sessionState int

const (
	stateUninitialized sessionState = iota
	stateReady
	stateClosed
)

// =============================================================================
// SESSION MODEL
// =============================================================================

// Model is the Bubble Tea model for an assistant session.
type Model struct {
	state  sessionState
	width  int
	height int

	keys     KeyMap
	help     help.Model
	theme    *styles.Theme
	header   *components.Header
	input    *components.PromptInput
	viewport *components.TranscriptViewport

	transcript *model.Transcript
	gen        *generator.Generator
	exporter   *export.Exporter

	status string
}

// Option configures a Model at construction.
type Option func(*Model)

// WithEnvironment tags the session with a deployment environment name.
// It shows in the header and in exported documents.
func WithEnvironment(env string) Option {
	return func(m *Model) {
		m.header.SetEnvironment(env)
		m.exporter.Environment = env
	}
}

// WithCharLimit overrides the input character limit.
func WithCharLimit(limit int) Option {
	return func(m *Model) {
		m.input.SetCharLimit(limit)
	}
}

// WithExportDir sets the directory exported documents are written to.
func WithExportDir(dir string) Option {
	return func(m *Model) {
		m.exporter.Dir = dir
	}
}

// WithTitle overrides the header bar text. Empty keeps the default.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.header.SetTitle(title)
	}
}

// New creates a session model in the uninitialized state. It becomes
// interactive once the first window size message arrives.
func New(opts ...Option) *Model {
	theme := styles.NewTheme()

	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc

	m := &Model{
		state:      stateUninitialized,
		keys:       DefaultKeyMap(),
		help:       h,
		theme:      theme,
		header:     components.NewHeader(theme, "Kubernetes Assistant"),
		input:      components.NewPromptInput(theme),
		viewport:   components.NewTranscriptViewport(theme),
		transcript: model.NewTranscript(WelcomeText),
		gen:        generator.New(),
		exporter:   export.NewExporter(""),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.viewport.SetTranscript(m.transcript)
	return m
}

// Transcript exposes the session transcript, mainly for tests.
func (m *Model) Transcript() *model.Transcript {
	return m.transcript
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return m.input.Blink()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update is the session event loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case SettingsMsg:
		m.applySettings(msg)
		return m, nil

	case tea.KeyMsg:
		if m.state != stateReady {
			// Quit must work even before the first size message.
			if action, _ := m.keys.ResolveAction(msg); action == ActionQuit {
				m.state = stateClosed
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	// Non-key messages (blink ticks, mouse wheel) go to the components.
	return m, m.forward(msg)
}

// resize lays the components out for a new terminal size and flips the
// session to ready on the first call.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	inner := width - 4
	m.header.SetWidth(inner)
	m.input.SetWidth(inner)
	m.help.Width = inner

	viewportHeight := height - 10
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	m.viewport.SetSize(inner, viewportHeight)
	m.viewport.SetTranscript(m.transcript)

	if m.state == stateUninitialized {
		m.state = stateReady
	}
}

// applySettings adopts reloaded configuration without disturbing the
// transcript or the draft.
func (m *Model) applySettings(msg SettingsMsg) {
	m.header.SetEnvironment(msg.Environment)
	m.header.SetTitle(msg.Title)
	m.exporter.Environment = msg.Environment
	m.exporter.Dir = msg.ExportDir
	m.input.SetCharLimit(msg.CharLimit)
}

// handleKey resolves one key event to at most one action.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	action, quickQuery := m.keys.ResolveAction(msg)
	switch action {
	case ActionQuit:
		m.state = stateClosed
		return m, tea.Quit

	case ActionClear:
		m.transcript.Reset(clearedText)
		m.viewport.SetTranscript(m.transcript)
		m.input.Reset()
		return m, nil

	case ActionSend:
		if m.input.Empty() {
			return m, nil
		}
		m.handleQuery(m.input.Value())
		m.input.Reset()
		return m, nil

	case ActionExport:
		m.exportDocument()
		return m, nil

	case ActionToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case ActionQuickQuery:
		// The input buffer is left untouched: quick actions answer a
		// fixed question, they do not consume the draft.
		m.handleQuery(quickQuery)
		return m, nil
	}

	// Page keys scroll the transcript; everything else edits the input.
	// The viewport must not also see ordinary runes, its default keymap
	// binds letters like j and k to scrolling.
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown:
		cmd := m.viewport.Update(msg)
		// Scrolling back pauses follow-the-tail until the user returns
		// to the bottom or a new turn arrives.
		m.viewport.SetAutoScroll(m.viewport.AtBottom())
		return m, cmd
	}
	return m, m.input.Update(msg)
}

// handleQuery appends the user turn and its generated answer, then
// snaps the viewport to the newest turn.
func (m *Model) handleQuery(query string) {
	m.transcript.AppendUser(query)
	m.transcript.AppendAssistant(m.gen.Generate(query))
	m.viewport.SetAutoScroll(true)
	m.viewport.SetTranscript(m.transcript)
}

// exportDocument writes the newest assistant document to disk and
// reports the result in the status line.
func (m *Model) exportDocument() {
	path, err := m.exporter.WriteLastDocument(m.transcript)
	if err != nil {
		m.status = m.theme.ErrorStyle.Render("export failed: " + err.Error())
		return
	}
	m.status = m.theme.SuccessStyle.Render("exported " + path)
}

// forward passes a message to the input and viewport components.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.input.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.viewport.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the session.
func (m *Model) View() string {
	if m.state == stateUninitialized {
		return "Starting kubedoc..."
	}
	if m.state == stateClosed {
		return ""
	}

	helpLine := m.help.View(m.keys)
	if m.status != "" {
		helpLine = m.status
	}

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s",
		m.header.View(),
		m.viewport.View(),
		m.input.View(),
		helpLine,
	)
}
