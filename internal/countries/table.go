// Package countries holds the static country lookup tables.
//
// Keys are normalized by trimming surrounding whitespace and lower-casing.
// Nothing else is folded, so "USA" and "united states" are distinct keys.
package countries

import (
	"sort"
	"strings"
)

// NormalizeKey converts a raw country name into a table key.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Table is an immutable mapping from normalized country keys to display
// strings, with a single fallback for unknown keys.
type Table struct {
	name     string
	entries  map[string]string
	fallback string
}

// NewTable copies entries into a new table. Entry keys are normalized.
func NewTable(name, fallback string, entries map[string]string) *Table {
	m := make(map[string]string, len(entries))
	for k, v := range entries {
		m[NormalizeKey(k)] = v
	}
	return &Table{name: name, entries: m, fallback: fallback}
}

// Lookup returns the value for raw, or the table's fallback when the
// normalized key is absent. A miss is a normal result, never an error.
func (t *Table) Lookup(raw string) string {
	if v, ok := t.entries[NormalizeKey(raw)]; ok {
		return v
	}
	return t.fallback
}

// Has reports whether raw has an entry.
func (t *Table) Has(raw string) bool {
	_, ok := t.entries[NormalizeKey(raw)]
	return ok
}

func (t *Table) Name() string     { return t.name }
func (t *Table) Fallback() string { return t.fallback }
func (t *Table) Len() int         { return len(t.entries) }

// Keys returns the table keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
