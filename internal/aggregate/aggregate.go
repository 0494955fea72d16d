// Package aggregate implements the pluggable aggregator contract spec.md
// §3/§4.4 requires: update(value) / snapshot(n) -> lines. Implementations
// are out of core scope per spec.md §1 ("required only to satisfy a
// simple contract") but are provided here so a parser's
// analytics_methods mapping resolves to a working aggregator.
package aggregate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Aggregator is the capability every analytics method implements.
type Aggregator interface {
	Update(value string)
	Snapshot(n int) []string
}

var dateFormatRe = regexp.MustCompile(`^Date\((.*)\)$`)

// New builds an Aggregator from a persisted method name, which is one of
// "Mean", "Mode", "Sum", "Count", or "Date(<fmt>)".
func New(method string) (Aggregator, error) {
	switch method {
	case "Mean":
		return &Mean{}, nil
	case "Mode":
		return &Mode{counts: map[string]int{}}, nil
	case "Sum":
		return &Sum{}, nil
	case "Count":
		return &Count{counts: map[string]int{}}, nil
	case "None":
		return &None{}, nil
	}
	if m := dateFormatRe.FindStringSubmatch(method); m != nil {
		return &DateRate{format: m[1], counts: map[string]int{}}, nil
	}
	return nil, fmt.Errorf("unknown aggregation method %q", method)
}

// None passes values through unchanged, used when no analytics method is
// configured for a field.
type None struct{ values []string }

func (a *None) Update(value string)     { a.values = append(a.values, value) }
func (a *None) Snapshot(n int) []string { return tail(a.values, n) }

// Count tracks occurrence counts per distinct value.
type Count struct {
	counts map[string]int
	order  []string
}

func (a *Count) Update(value string) {
	if _, ok := a.counts[value]; !ok {
		a.order = append(a.order, value)
	}
	a.counts[value]++
}

func (a *Count) Snapshot(n int) []string {
	type pair struct {
		k string
		v int
	}
	pairs := make([]pair, 0, len(a.counts))
	for _, k := range a.order {
		pairs = append(pairs, pair{k, a.counts[k]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].v > pairs[j].v })
	out := make([]string, 0, n)
	for i, p := range pairs {
		if i >= n {
			break
		}
		out = append(out, fmt.Sprintf("%s: %d", p.k, p.v))
	}
	return out
}

// Mode is Count's top-1 view: the single most frequent value.
type Mode struct {
	counts map[string]int
	order  []string
}

func (a *Mode) Update(value string) {
	if _, ok := a.counts[value]; !ok {
		a.order = append(a.order, value)
	}
	a.counts[value]++
}

func (a *Mode) Snapshot(n int) []string {
	if len(a.counts) == 0 {
		return nil
	}
	best, bestCount := a.order[0], a.counts[a.order[0]]
	for _, k := range a.order {
		if a.counts[k] > bestCount {
			best, bestCount = k, a.counts[k]
		}
	}
	return []string{fmt.Sprintf("%s: %d", best, bestCount)}
}

// Sum accumulates a running total of numeric values, skipping any that
// don't parse as a float.
type Sum struct {
	total float64
	count int
}

func (a *Sum) Update(value string) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return
	}
	a.total += f
	a.count++
}

func (a *Sum) Snapshot(n int) []string {
	return []string{fmt.Sprintf("sum: %g (n=%d)", a.total, a.count)}
}

// Mean tracks a running average of numeric values.
type Mean struct {
	total float64
	count int
}

func (a *Mean) Update(value string) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return
	}
	a.total += f
	a.count++
}

func (a *Mean) Snapshot(n int) []string {
	if a.count == 0 {
		return []string{"mean: n/a"}
	}
	return []string{fmt.Sprintf("mean: %g", a.total/float64(a.count))}
}

// DateRate buckets occurrences per formatted timestamp, parsing each
// value with format (a reference-time layout, spec.md's Date(format)).
type DateRate struct {
	format string
	counts map[string]int
	order  []string
}

func (a *DateRate) Update(value string) {
	t, err := time.Parse(a.format, strings.TrimSpace(value))
	var key string
	if err != nil {
		key = "unparsed"
	} else {
		key = t.Format(a.format)
	}
	if _, ok := a.counts[key]; !ok {
		a.order = append(a.order, key)
	}
	a.counts[key]++
}

func (a *DateRate) Snapshot(n int) []string {
	out := make([]string, 0, n)
	for i, k := range a.order {
		if i >= n {
			break
		}
		out = append(out, fmt.Sprintf("%s: %d", k, a.counts[k]))
	}
	return out
}

func tail(values []string, n int) []string {
	if n <= 0 || len(values) == 0 {
		return nil
	}
	if n > len(values) {
		n = len(values)
	}
	out := make([]string, n)
	copy(out, values[len(values)-n:])
	return out
}
