package tui

import (
	"strings"

	"github.com/ReagentX/Logria-sub000/internal/engine"
	"github.com/ReagentX/Logria-sub000/internal/message"
	"github.com/ReagentX/Logria-sub000/internal/parsing"
	"github.com/ReagentX/Logria-sub000/internal/render"
)

// View renders the current viewport slice plus the bottom command line
// (spec.md §4.5's drawing contract, §6's on-screen chrome).
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	length := m.visibleCount()
	realLen := func(i int) int { return render.RealLen(m.lineAt(i)) }
	start, end := render.DeterminePosition(length, m.viewport.LastRenderableRow, m.viewport.CurrentEnd, m.viewport.ScrollState, realLen, m.width)
	m.viewport.CurrentEnd = end

	var b strings.Builder
	for i := start; i < end; i++ {
		line := m.lineAt(i)
		if m.viewport.HighlightMatch && m.regex.Active() {
			line = render.Highlight(line, m.regex.Pattern())
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// lineAt resolves the i-th visible line for the active mode: a match
// index lookup in Regex mode, the parsed/auxiliary buffer in Parser
// mode, or the current stream buffer otherwise.
func (m *Model) lineAt(i int) string {
	switch m.modes.Current {
	case engine.Regex:
		if m.regex.Active() {
			idx := m.regex.MatchAt(i)
			return m.store.At(m.streamType, idx)
		}
		return m.store.At(m.streamType, i)
	case engine.Parser:
		if m.parser.State == parsing.Full {
			return m.store.At(message.Auxiliary, i)
		}
		return m.store.At(m.streamType, i)
	default:
		return m.store.At(m.streamType, i)
	}
}

func (m *Model) statusLine() string {
	cursor := string(m.modes.Current.Cursor())
	entry := m.entry.Buffer()
	if m.modes.CurrentStatus != "" && entry == "" {
		return statusStyle.Render(m.modes.CurrentStatus)
	}
	return cursorStyle.Render(cursor) + " " + entry
}
