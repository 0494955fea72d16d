package persist

import (
	"bufio"
	"bytes"
	"os"

	"github.com/ReagentX/Logria-sub000/internal/errs"
)

// blacklisted commands are never recorded to the history tape, per
// spec.md §4.2/§6.
var blacklisted = map[string]bool{
	":history":     true,
	":history off": true,
}

// Tape is the append-only command history with Up/Down navigation.
// When disabled (the -c/--no-cache flag), it neither reads nor writes
// the backing file, per the supplemented behavior in SPEC_FULL.md §4
// ("-c disables history reads too, not just writes").
type Tape struct {
	path     string
	disabled bool
	entries  []string
	cursor   int
	stepBack bool
	file     *os.File
}

// OpenTape loads path's existing entries (unless disabled) and readies
// it for line-buffered appends.
func OpenTape(path string, disabled bool) (*Tape, error) {
	t := &Tape{path: path, disabled: disabled}
	if disabled {
		return t, nil
	}

	if data, err := os.ReadFile(path); err == nil {
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			line := sc.Text()
			if line != "" {
				t.entries = append(t.entries, line)
			}
		}
	} else if !os.IsNotExist(err) {
		return t, errs.New(errs.CannotRead, err)
	}
	t.cursor = len(t.entries)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return t, errs.New(errs.CannotWrite, err)
	}
	t.file = f
	return t, nil
}

// Close flushes and closes the backing file, if any.
func (t *Tape) Close() error {
	if t.file == nil {
		return nil
	}
	return t.file.Close()
}

// Record appends cmd to the tape unless it's blacklisted or the tape
// is disabled. The write is flushed immediately (spec.md §4.8: "line-
// buffered and flushed per entry").
func (t *Tape) Record(cmd string) error {
	if t.disabled || blacklisted[cmd] {
		return nil
	}
	t.entries = append(t.entries, cmd)
	t.cursor = len(t.entries)
	t.stepBack = false

	if t.file == nil {
		return nil
	}
	if _, err := t.file.WriteString(cmd + "\n"); err != nil {
		return errs.New(errs.CannotWrite, err)
	}
	return t.file.Sync()
}

// Len returns the number of recorded entries.
func (t *Tape) Len() int { return len(t.entries) }

// Back moves the cursor toward older entries and returns the entry now
// under it, implementing the "should-step-back-once-before-moving"
// flag: the first Back after a fresh Record/reset returns the most
// recent entry without moving past it.
func (t *Tape) Back() (string, bool) {
	if len(t.entries) == 0 {
		return "", false
	}
	if !t.stepBack {
		t.stepBack = true
		if t.cursor > 0 {
			t.cursor--
		}
		return t.entries[t.cursor], true
	}
	if t.cursor > 0 {
		t.cursor--
	}
	return t.entries[t.cursor], true
}

// Forward moves the cursor toward newer entries, returning "" with ok
// false once it runs past the newest entry (an empty buffer).
func (t *Tape) Forward() (string, bool) {
	if len(t.entries) == 0 {
		return "", false
	}
	if t.cursor >= len(t.entries)-1 {
		t.cursor = len(t.entries)
		return "", false
	}
	t.cursor++
	return t.entries[t.cursor], true
}

// ResetCursor returns the cursor to the newest position, re-arming the
// step-back-once flag for the next navigation sequence.
func (t *Tape) ResetCursor() {
	t.cursor = len(t.entries)
	t.stepBack = false
}
