// Package engine implements the modal input state machine (spec.md §4.6)
// and the main-loop-adjacent algorithms it shares with the command
// dispatcher: the text-entry sub-component, scroll actions, viewport
// bookkeeping, and the delete-command range-list grammar.
package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ReagentX/Logria-sub000/internal/errs"
)

// ParseRangeList parses the `r S` delete-command argument: a
// comma-separated list of integers and/or inclusive ranges `a-b`.
// Results are sorted ascending with duplicates collapsed; empty items
// (from doubled commas) are ignored; any non-numeric part rejects the
// whole list with InvalidCommand.
func ParseRangeList(s string) ([]int, error) {
	seen := map[int]bool{}
	var out []int

	add := func(v int) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if dash := strings.IndexByte(item, '-'); dash > 0 {
			loStr, hiStr := item[:dash], item[dash+1:]
			lo, loErr := strconv.Atoi(strings.TrimSpace(loStr))
			hi, hiErr := strconv.Atoi(strings.TrimSpace(hiStr))
			if loErr != nil || hiErr != nil {
				return nil, errs.Newf(errs.InvalidCommand, "malformed range %q", item)
			}
			if lo > hi {
				continue
			}
			for v := lo; v <= hi; v++ {
				add(v)
			}
			continue
		}
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, errs.Newf(errs.InvalidCommand, "non-numeric item %q", item)
		}
		add(v)
	}

	sort.Ints(out)
	return out, nil
}
