package render

import (
	"regexp"

	"github.com/charmbracelet/x/ansi"
)

// ansiSGR is the fixed pattern spec.md §4.4 mandates for stripping
// existing SGR sequences before a highlight pass rewrites a line.
var ansiSGR = regexp.MustCompile(`(\x9b|\x1b\[)[0-?]*[ -/]*[@-~]`)

const (
	// highlightCode and resetCode are the fixed constants spec.md's
	// highlight overlay wraps each pattern hit with.
	highlightCode = "\x1b[35m"
	resetCode     = "\x1b[0m"
)

// RealLen is the printable length of s after stripping ANSI SGR
// sequences; used for wrap accounting in the render model.
func RealLen(s string) int {
	return len([]rune(ansi.Strip(s)))
}

// StripSGR removes existing ANSI SGR sequences using the fixed pattern
// spec.md names, ahead of a highlight pass rewriting the line.
func StripSGR(s string) string {
	return ansiSGR.ReplaceAllString(s, "")
}

// Highlight rewrites line by stripping existing SGR sequences and then
// wrapping every non-overlapping match of pattern with the fixed
// magenta-open/reset color codes.
func Highlight(line string, pattern *regexp.Regexp) string {
	if pattern == nil {
		return line
	}
	clean := StripSGR(line)
	locs := pattern.FindAllStringIndex(clean, -1)
	if len(locs) == 0 {
		return clean
	}

	var out []byte
	last := 0
	for _, loc := range locs {
		out = append(out, clean[last:loc[0]]...)
		out = append(out, highlightCode...)
		out = append(out, clean[loc[0]:loc[1]]...)
		out = append(out, resetCode...)
		last = loc[1]
	}
	out = append(out, clean[last:]...)
	return string(out)
}
