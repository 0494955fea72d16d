package parsing

import "fmt"

// State is the parser handler's runtime state (spec.md §3/§4.4).
type State int

const (
	Disabled State = iota
	NeedsParser
	NeedsIndex
	Full
)

// Cursor incrementally parses new messages into the parsed buffer,
// appending an error placeholder (and still advancing) on failure.
type Cursor struct {
	parse      ParseFunc
	index      int
	lastParsed int
	values     []string
}

// NewCursor wraps a compiled ParseFunc and the field ordinal to project.
func NewCursor(parse ParseFunc, fieldIndex int) *Cursor {
	return &Cursor{parse: parse, index: fieldIndex}
}

// Advance parses every message from last_parsed up to total (exclusive).
// at(i) must return the buffer message at index i.
func (c *Cursor) Advance(total int, at func(i int) string) {
	for i := c.lastParsed; i < total; i++ {
		v, err := c.parse(at(i), c.index)
		if err != nil {
			v = fmt.Sprintf("Unable to parse message: %v", err)
		}
		c.values = append(c.values, v)
	}
	c.lastParsed = total
}

// Len returns the number of parsed values so far.
func (c *Cursor) Len() int { return len(c.values) }

// At returns the i-th parsed value.
func (c *Cursor) At(i int) string {
	if i < 0 || i >= len(c.values) {
		return ""
	}
	return c.values[i]
}

// LastParsed returns the cursor: every index below it has been parsed
// exactly once.
func (c *Cursor) LastParsed() int { return c.lastParsed }

// Values returns a copy of all parsed values so far.
func (c *Cursor) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}
