package charging

import (
	"sort"
	"strings"
)

// LocationMemory holds the home/work labels learned during one analysis
// session together with a long-stay frequency counter. It improves
// classification confidence as more drives are observed; it is a best-effort
// bounded cache, not a correctness-critical store, and may be Reset at any
// time.
//
// A LocationMemory is not safe for concurrent mutation. Instantiate one per
// analysis session or synchronize externally when reusing it.
type LocationMemory struct {
	home      map[string]struct{}
	work      map[string]struct{}
	longStays map[string]int
}

// NewLocationMemory returns an empty memory.
func NewLocationMemory() *LocationMemory {
	return &LocationMemory{
		home:      make(map[string]struct{}),
		work:      make(map[string]struct{}),
		longStays: make(map[string]int),
	}
}

func memoryKey(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// MarkHome records the location as home.
func (m *LocationMemory) MarkHome(location string) {
	m.home[memoryKey(location)] = struct{}{}
}

// MarkWork records the location as work.
func (m *LocationMemory) MarkWork(location string) {
	m.work[memoryKey(location)] = struct{}{}
}

// IsHome reports whether the location was learned as home.
func (m *LocationMemory) IsHome(location string) bool {
	_, ok := m.home[memoryKey(location)]
	return ok
}

// IsWork reports whether the location was learned as work.
func (m *LocationMemory) IsWork(location string) bool {
	_, ok := m.work[memoryKey(location)]
	return ok
}

// RecordLongStay increments the long-stay counter for the location and
// returns the new count.
func (m *LocationMemory) RecordLongStay(location string) int {
	k := memoryKey(location)
	m.longStays[k]++
	return m.longStays[k]
}

// HomeLocations returns the learned home labels, sorted.
func (m *LocationMemory) HomeLocations() []string { return sortedKeys(m.home) }

// WorkLocations returns the learned work labels, sorted.
func (m *LocationMemory) WorkLocations() []string { return sortedKeys(m.work) }

// Reset clears everything. Resetting affects confidence, never correctness.
func (m *LocationMemory) Reset() {
	m.home = make(map[string]struct{})
	m.work = make(map[string]struct{})
	m.longStays = make(map[string]int)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
