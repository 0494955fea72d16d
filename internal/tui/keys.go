package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ReagentX/Logria-sub000/internal/engine"
	"github.com/ReagentX/Logria-sub000/internal/message"
	"github.com/ReagentX/Logria-sub000/internal/parsing"
)

// handleKey dispatches a keystroke to the active mode's handler
// (spec.md §4.6).
func (m *Model) handleKey(msg tea.KeyMsg) {
	switch m.modes.Current {
	case engine.Startup:
		m.handleStartupKey(msg)
	case engine.Normal:
		m.handleNormalKey(msg)
	case engine.Command:
		m.handleCommandKey(msg)
	case engine.Regex:
		m.handleRegexKey(msg)
	case engine.Parser:
		m.handleParserKey(msg)
	}
}

// scrollActionFor maps the named keys spec.md §4.6's "Scroll actions
// (shared)" lists to a ScrollAction. Left/Right are deliberately absent:
// the shared scroll-action set has no horizontal action, so those keys
// fall through to text-entry cursor movement in every mode except
// Normal, which ignores them.
func scrollActionFor(msg tea.KeyMsg) (engine.ScrollAction, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return engine.ScrollUp, true
	case tea.KeyDown:
		return engine.ScrollDown, true
	case tea.KeyPgUp:
		return engine.ScrollPageUp, true
	case tea.KeyPgDown:
		return engine.ScrollPageDown, true
	case tea.KeyHome:
		return engine.ScrollTop, true
	case tea.KeyEnd:
		return engine.ScrollBottom, true
	}
	return 0, false
}

// feedEntry applies an edit keystroke to the shared text-entry
// sub-component. Reports whether the key was consumed.
func (m *Model) feedEntry(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace:
		m.entry.Backspace()
	case tea.KeyDelete:
		m.entry.Delete()
	case tea.KeyLeft:
		m.entry.Left()
	case tea.KeyRight:
		m.entry.Right()
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			m.entry.Insert(r)
		}
		if msg.Type == tea.KeySpace {
			m.entry.Insert(' ')
		}
	default:
		return false
	}
	return true
}

func (m *Model) handleStartupKey(msg tea.KeyMsg) {
	if action, ok := scrollActionFor(msg); ok {
		m.viewport.Apply(action, m.visibleCount())
		return
	}
	switch msg.Type {
	case tea.KeyEnter:
		m.startupSelect()
		return
	}
	if msg.Type == tea.KeyRunes && msg.String() == ":" {
		m.modes.EnterCommand(m.deleteSessions)
		return
	}
	m.feedEntry(msg)
}

func (m *Model) startupSelect() {
	text, _ := m.entry.Gather()
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(m.sessionNames) {
		m.modes.CurrentStatus = "Invalid command: " + text
		return
	}
	name := m.sessionNames[n-1]
	sess, err := m.sessionStore.Load(name)
	if err != nil {
		m.modes.CurrentStatus = "Error: " + err.Error()
		return
	}
	for _, spec := range sess.Commands {
		if err := m.attach(spec); err != nil {
			m.modes.CurrentStatus = "Error: " + err.Error()
		}
	}
	m.streamType = message.StdErr
	m.modes.Current = engine.Normal
}

func (m *Model) deleteSessions(indices []int) error {
	var names []string
	for _, i := range indices {
		if i-1 >= 0 && i-1 < len(m.sessionNames) {
			names = append(names, m.sessionNames[i-1])
		}
	}
	if err := m.sessionStore.DeleteMany(names); err != nil {
		return err
	}
	names, err := m.sessionStore.List()
	if err != nil {
		return err
	}
	m.sessionNames = names
	m.store.ReplaceAuxiliary(startupBanner(names))
	return nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) {
	if action, ok := scrollActionFor(msg); ok {
		m.viewport.Apply(action, m.visibleCount())
		return
	}
	if msg.Type != tea.KeyRunes {
		return
	}
	switch msg.String() {
	case "s":
		m.streamType, m.previousStreamType = m.previousStreamType, m.streamType
		if m.streamType != message.StdOut && m.streamType != message.StdErr {
			m.streamType = message.StdOut
		}
	case "/":
		m.modes.Current = engine.Regex
	case "p":
		m.modes.Current = engine.Parser
		m.parser.Enter()
	case "h":
		m.viewport.HighlightMatch = !m.viewport.HighlightMatch
	case ":":
		m.modes.EnterCommand(nil)
	case "a":
		m.parser.ToggleAggregation()
	case "z":
		m.parser.Exit()
	}
}

func (m *Model) handleCommandKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		m.modes.Return()
		return
	case tea.KeyEnter:
		text, _ := m.entry.Gather()
		m.dispatcher.StreamType = m.streamType
		m.dispatcher.IsStartup = m.modes.Previous == engine.Startup
		m.modes.CurrentStatus = m.dispatcher.Dispatch(text)
		return
	case tea.KeyUp:
		m.entry.HistoryBack()
		return
	case tea.KeyDown:
		m.entry.HistoryForward()
		return
	}
	m.feedEntry(msg)
}

func (m *Model) handleRegexKey(msg tea.KeyMsg) {
	if action, ok := scrollActionFor(msg); ok {
		m.viewport.Apply(action, m.visibleCount())
		return
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.regex.Clear()
		m.modes.Current = engine.Normal
		return
	case tea.KeyEnter:
		if m.regex.Active() {
			m.regex.Clear()
			return
		}
		text, _ := m.entry.Gather()
		if err := m.regex.Set(text); err != nil {
			m.modes.CurrentStatus = "Invalid regex: /" + text + "/ (" + err.Error() + ")"
		}
		return
	}
	m.feedEntry(msg)
}

func (m *Model) handleParserKey(msg tea.KeyMsg) {
	if action, ok := scrollActionFor(msg); ok {
		m.viewport.Apply(action, m.visibleCount())
		return
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.parser.Exit()
		m.modes.Current = engine.Normal
		return
	case tea.KeyF5:
		return // forced reprocess: next tick's advance() picks up the refresh
	case tea.KeyEnter:
		m.parserEnter()
		return
	}
	m.feedEntry(msg)
}

func (m *Model) parserEnter() {
	text, _ := m.entry.Gather()
	switch m.parser.State {
	case parsing.NeedsParser:
		def, err := m.parserStore.Load(text)
		if err != nil {
			m.modes.CurrentStatus = "Error: " + err.Error()
			return
		}
		if err := m.parser.SelectParser(def); err != nil {
			m.modes.CurrentStatus = "Invalid regex: " + err.Error()
		}
	case parsing.NeedsIndex:
		idx, err := strconv.Atoi(text)
		if err != nil {
			m.modes.CurrentStatus = "Invalid command: " + text
			return
		}
		if err := m.parser.SelectIndex(idx); err != nil {
			m.modes.CurrentStatus = "Error: " + err.Error()
		}
	}
}
