package trigram

import (
	"cmp"
	"slices"
)

// Entry is a trigram with its number of occurrences
type Entry struct {
	Trigram string
	Count   int
}

// Table counts trigrams and remembers the order they were first seen in
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable makes an empty table
func NewTable() *Table {
	return &Table{index: map[string]int{}}
}

// Add increments the count of tri
func (t *Table) Add(tri string) {
	if i, ok := t.index[tri]; ok {
		t.entries[i].Count++
		return
	}
	t.index[tri] = len(t.entries)
	t.entries = append(t.entries, Entry{Trigram: tri, Count: 1})
}

// Get returns the count of tri, 0 if never added
func (t *Table) Get(tri string) int {
	if i, ok := t.index[tri]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct trigrams
func (t *Table) Len() int {
	return len(t.entries)
}

// Top returns up to n entries ordered by count, most frequent first.
// Equal counts keep first-seen order.
func (t *Table) Top(n int) []Entry {
	if n <= 0 || len(t.entries) == 0 {
		return []Entry{}
	}
	res := slices.Clone(t.entries)
	slices.SortStableFunc(res, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n < len(res) {
		res = res[:n]
	}
	return res
}
