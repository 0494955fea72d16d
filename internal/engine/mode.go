package engine

// Mode names one of the five input-mode handlers (spec.md §4.6).
type Mode int

const (
	Startup Mode = iota
	Normal
	Command
	Regex
	Parser
)

// Cursor returns the fixed single-character mode cursor painted at the
// left of the command line (spec.md §6 "On-screen chrome").
func (m Mode) Cursor() rune {
	switch m {
	case Command:
		return ':'
	case Regex:
		return '/'
	case Parser:
		return '+'
	default:
		return '│'
	}
}

// ModeState is the shared modal bookkeeping every handler dispatches
// through: the active/previous mode, an optional delete callback bound
// by whoever entered Command mode, and a status line for the command
// row.
type ModeState struct {
	Current        Mode
	Previous       Mode
	DeleteCallback func(indices []int) error
	CurrentStatus  string
}

// EnterCommand switches to Command mode, remembering the mode to
// return to and the delete callback bound for `r S`.
func (m *ModeState) EnterCommand(deleteCallback func(indices []int) error) {
	m.Previous = m.Current
	m.Current = Command
	m.DeleteCallback = deleteCallback
}

// Return switches back to the previous mode and clears the delete
// callback, per spec.md §4.6 ("On Esc or after dispatch, return to
// previous mode, clear delete callback").
func (m *ModeState) Return() {
	m.Current = m.Previous
	m.DeleteCallback = nil
}
