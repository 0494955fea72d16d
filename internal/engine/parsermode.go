package engine

import (
	"strconv"

	"github.com/ReagentX/Logria-sub000/internal/aggregate"
	"github.com/ReagentX/Logria-sub000/internal/parsing"
)

// ParserMode owns the parser state machine (spec.md §4.4) plus the
// per-field aggregator it drives once fully configured. State
// transitions mirror the spec exactly: Disabled -> NeedsParser ->
// NeedsIndex -> Full, with Full <-> Full on aggregation toggle and any
// state -> Disabled on explicit exit.
type ParserMode struct {
	State          parsing.State
	Definition     *parsing.Definition
	FieldIndex     int
	Cursor         *parsing.Cursor
	Aggregator     aggregate.Aggregator
	AggOn          bool
	NumToAggregate int

	// DidSwitch is armed whenever a parser finishes installing (entering
	// Full) and cleared by the main loop once it has issued the two F5
	// refresh ticks spec.md §9 documents as compensating for the
	// install-then-flush race.
	DidSwitch   bool
	switchTicks int
}

// NewParserMode builds a parser handler with a default snapshot size.
func NewParserMode(numToAggregate int) *ParserMode {
	return &ParserMode{State: parsing.Disabled, NumToAggregate: numToAggregate}
}

// Enter transitions Disabled -> NeedsParser when the user presses `p`
// in Normal mode.
func (p *ParserMode) Enter() {
	if p.State == parsing.Disabled {
		p.State = parsing.NeedsParser
	}
}

// SelectParser installs a chosen persisted definition and advances to
// NeedsIndex.
func (p *ParserMode) SelectParser(def *parsing.Definition) error {
	if p.State != parsing.NeedsParser {
		return nil
	}
	if _, err := def.Compile(); err != nil {
		return err
	}
	p.Definition = def
	p.State = parsing.NeedsIndex
	return nil
}

// SelectIndex picks the ordinal field to project, builds the parse
// cursor, and arms the did-switch double-tick.
func (p *ParserMode) SelectIndex(index int) error {
	if p.State != parsing.NeedsIndex || p.Definition == nil {
		return nil
	}
	parseFn, err := p.Definition.Compile()
	if err != nil {
		return err
	}
	p.FieldIndex = index
	p.Cursor = parsing.NewCursor(parseFn, index)
	p.State = parsing.Full
	p.DidSwitch = true
	p.switchTicks = 2

	if method, ok := p.Definition.AnalyticsMethods[strconv.Itoa(index)]; ok {
		agg, err := aggregate.New(method)
		if err == nil {
			p.Aggregator = agg
		}
	}
	return nil
}

// ToggleAggregation flips aggregation on/off without leaving Full.
func (p *ParserMode) ToggleAggregation() {
	if p.State == parsing.Full {
		p.AggOn = !p.AggOn
	}
}

// Exit clears all parser state, per `z` or Esc from any state.
func (p *ParserMode) Exit() {
	p.State = parsing.Disabled
	p.Definition = nil
	p.Cursor = nil
	p.Aggregator = nil
	p.AggOn = false
	p.DidSwitch = false
	p.switchTicks = 0
}

// ConsumeSwitchTick reports whether a forced F5 refresh tick is still
// owed, decrementing the counter and clearing DidSwitch once both
// ticks have been consumed.
func (p *ParserMode) ConsumeSwitchTick() bool {
	if p.switchTicks <= 0 {
		p.DidSwitch = false
		return false
	}
	p.switchTicks--
	if p.switchTicks == 0 {
		p.DidSwitch = false
	}
	return true
}

// Advance parses newly-arrived messages when Full, forwards them to
// the aggregator when aggregation is enabled, and replaces the
// auxiliary buffer with the aggregator's snapshot.
func (p *ParserMode) Advance(total int, at func(i int) string, replaceAuxiliary func([]string)) {
	if p.State != parsing.Full || p.Cursor == nil {
		return
	}
	before := p.Cursor.LastParsed()
	p.Cursor.Advance(total, at)

	if !p.AggOn || p.Aggregator == nil {
		return
	}
	for i := before; i < p.Cursor.LastParsed(); i++ {
		p.Aggregator.Update(p.Cursor.At(i))
	}
	replaceAuxiliary(p.Aggregator.Snapshot(p.NumToAggregate))
}

// VisibleLength returns how many messages the renderer should see for
// Parser mode (spec.md §4.3): the auxiliary buffer's length when Full,
// else the current buffer's length.
func (p *ParserMode) VisibleLength(auxiliaryLen, currentBufferLen int) int {
	if p.State == parsing.Full {
		return auxiliaryLen
	}
	return currentBufferLen
}
