// Package filter implements the incremental regex filter: spec.md §4.4's
// "Regex filter". A pattern is tested against every new message exactly
// once, extending a monotonic index of matches.
package filter

import "regexp"

// Engine holds the active pattern (if any), the match index, and the
// last_regexed cursor. The zero value is a disabled engine (no pattern).
type Engine struct {
	pattern     *regexp.Regexp
	source      string
	matchIndex  []int
	lastRegexed int
}

// NewEngine returns a disabled engine with no active pattern.
func NewEngine() *Engine {
	return &Engine{}
}

// Set compiles pattern and, on success, replaces the active pattern and
// resets the match index/cursor so the whole buffer is rescanned from 0.
// On a compile failure the previous pattern (if any) stays active and the
// error is returned for the caller to show in the command line.
func (e *Engine) Set(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	e.pattern = re
	e.source = pattern
	e.matchIndex = nil
	e.lastRegexed = 0
	return nil
}

// Clear resets the match index, last_regexed cursor, and the pattern
// itself, disabling the engine.
func (e *Engine) Clear() {
	e.pattern = nil
	e.source = ""
	e.matchIndex = nil
	e.lastRegexed = 0
}

// Active reports whether a pattern is currently set.
func (e *Engine) Active() bool { return e.pattern != nil }

// Pattern returns the active compiled pattern, or nil.
func (e *Engine) Pattern() *regexp.Regexp { return e.pattern }

// Source returns the raw pattern text last successfully set.
func (e *Engine) Source() string { return e.source }

// MatchLen returns the current length of the match index.
func (e *Engine) MatchLen() int { return len(e.matchIndex) }

// MatchAt returns the index-into-the-buffer of the i-th match.
func (e *Engine) MatchAt(i int) int {
	if i < 0 || i >= len(e.matchIndex) {
		return -1
	}
	return e.matchIndex[i]
}

// Advance tests every message from last_regexed up to total (exclusive),
// appending matching indices to the match index and advancing the
// cursor. at(i) must return the buffer message at index i. A no-op if no
// pattern is active.
func (e *Engine) Advance(total int, at func(i int) string) {
	if e.pattern == nil {
		return
	}
	for i := e.lastRegexed; i < total; i++ {
		if e.pattern.MatchString(at(i)) {
			e.matchIndex = append(e.matchIndex, i)
		}
	}
	e.lastRegexed = total
}

// LastRegexed returns the cursor: every index below it has been tested
// exactly once.
func (e *Engine) LastRegexed() int { return e.lastRegexed }
