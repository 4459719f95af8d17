package aggregator

import (
	"sort"

	"log-analytics-backend/internal/model"
)

// frequencyTable counts occurrences of a key while remembering the order
// keys were first seen, so that Top can break count ties deterministically.
// Memory is O(distinct keys).
type frequencyTable struct {
	counts    map[string]int
	firstSeen map[string]int
	seq       int
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}
}

func (t *frequencyTable) Inc(key string) {
	if _, ok := t.counts[key]; !ok {
		t.firstSeen[key] = t.seq
		t.seq++
	}
	t.counts[key]++
}

// Merge folds another table into this one. Counts add; first-seen order of
// the receiver wins for shared keys, merged keys follow.
func (t *frequencyTable) Merge(other *frequencyTable) {
	keys := make([]string, 0, len(other.counts))
	for key := range other.counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return other.firstSeen[keys[i]] < other.firstSeen[keys[j]]
	})
	for _, key := range keys {
		if _, ok := t.counts[key]; !ok {
			t.firstSeen[key] = t.seq
			t.seq++
		}
		t.counts[key] += other.counts[key]
	}
}

func (t *frequencyTable) Len() int {
	return len(t.counts)
}

// Top returns the k highest-count entries, descending by count, ties by
// first-seen order.
func (t *frequencyTable) Top(k int) []model.TableEntry {
	if len(t.counts) == 0 {
		return nil
	}
	entries := make([]model.TableEntry, 0, len(t.counts))
	for key, count := range t.counts {
		entries = append(entries, model.TableEntry{Key: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return t.firstSeen[entries[i].Key] < t.firstSeen[entries[j].Key]
	})
	if k > 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
