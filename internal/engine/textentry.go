package engine

// HistoryTape is the subset of persist.Tape the text-entry component
// needs, kept narrow so engine doesn't import persist (which in turn
// would need engine's types for session wiring done higher up).
type HistoryTape interface {
	Record(cmd string) error
	Back() (string, bool)
	Forward() (string, bool)
	ResetCursor()
}

// TextEntry is the reusable text-entry sub-component (spec.md §4.6):
// a character buffer, cursor column, screen width, and a reference to
// the history tape for Up/Down navigation.
type TextEntry struct {
	buffer []rune
	cursor int
	width  int
	tape   HistoryTape
}

// NewTextEntry builds an entry bound to width columns and tape (may be
// nil, e.g. when history is disabled via -c).
func NewTextEntry(width int, tape HistoryTape) *TextEntry {
	return &TextEntry{width: width, tape: tape}
}

// SetWidth updates the column budget used by Insert's room check.
func (e *TextEntry) SetWidth(width int) { e.width = width }

// Buffer returns the current contents.
func (e *TextEntry) Buffer() string { return string(e.buffer) }

// Cursor returns the current cursor column.
func (e *TextEntry) Cursor() int { return e.cursor }

// Insert adds r at the cursor if there's room (column < width-3).
func (e *TextEntry) Insert(r rune) {
	if e.cursor >= e.width-3 {
		return
	}
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
}

// Backspace removes the rune left of the cursor and moves the cursor
// left.
func (e *TextEntry) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
	e.cursor--
}

// Delete removes the rune right of the cursor without moving it.
func (e *TextEntry) Delete() {
	if e.cursor >= len(e.buffer) {
		return
	}
	e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
}

// Left moves the cursor one column left, clamped at 0.
func (e *TextEntry) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// Right moves the cursor one column right, clamped at the buffer end.
func (e *TextEntry) Right() {
	if e.cursor < len(e.buffer) {
		e.cursor++
	}
}

// HistoryBack overwrites the buffer with the previous tape entry and
// moves the cursor to its end. No-op if there is no tape or history.
func (e *TextEntry) HistoryBack() {
	if e.tape == nil {
		return
	}
	v, ok := e.tape.Back()
	if !ok {
		return
	}
	e.buffer = []rune(v)
	e.cursor = len(e.buffer)
}

// HistoryForward overwrites the buffer with the next tape entry,
// clearing it once navigation runs past the newest entry.
func (e *TextEntry) HistoryForward() {
	if e.tape == nil {
		return
	}
	v, ok := e.tape.Forward()
	if !ok {
		e.buffer = nil
		e.cursor = 0
		return
	}
	e.buffer = []rune(v)
	e.cursor = len(e.buffer)
}

// Gather returns the buffer's contents, records it to the history
// tape (unless excluded by the tape's own blacklist), clears the
// buffer, and resets the cursor and tape navigation position.
func (e *TextEntry) Gather() (string, error) {
	s := string(e.buffer)
	e.buffer = nil
	e.cursor = 0
	if e.tape == nil {
		return s, nil
	}
	err := e.tape.Record(s)
	e.tape.ResetCursor()
	return s, err
}
