// Package rank implements the grouped-count ranking primitive shared by the
// language, country, and repository rankings.
//
// Every call site states its tie-break mode explicitly. StrictTopN truncates
// to exactly n entries with a deterministic order inside a tie; KeepTies
// returns every group tied with the n-th count, so the result may be longer
// than n.
package rank

import (
	"sort"

	"ghpulse/internal/core/events"
)

// Pair is one ranked (label, count) result
type Pair struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TieMode selects the cutoff policy when groups tie at rank n
type TieMode int

const (
	// StrictTopN truncates to exactly n entries; order within a tie is
	// count desc then key asc, stable and arbitrary but documented
	StrictTopN TieMode = iota

	// KeepTies returns all groups tied with the n-th count, so the
	// result length may exceed n
	KeepTies
)

// String names the mode for logs and report metadata
func (m TieMode) String() string {
	if m == KeepTies {
		return "keep-ties"
	}
	return "strict-top-n"
}

// KeyFunc extracts the grouping key for an event; empty keys are excluded
type KeyFunc func(events.Event) string

// CountBy tallies events per non-empty key. The sum of all counts equals the
// number of events with a non-empty key, which is the invariant the top-N
// views are cut from
func CountBy(evs []events.Event, key KeyFunc) map[string]int {
	counts := map[string]int{}
	for _, e := range evs {
		k := key(e)
		if k == "" {
			continue
		}
		counts[k]++
	}
	return counts
}

// TopN groups evs by key, counts, and returns the top n pairs in
// non-increasing count order under the given tie mode.
// n <= 0 yields an empty result
func TopN(evs []events.Event, key KeyFunc, n int, mode TieMode) []Pair {
	return Cut(CountBy(evs, key), n, mode)
}

// Cut orders a precomputed count map and applies the top-n cutoff
func Cut(counts map[string]int, n int, mode TieMode) []Pair {
	if n <= 0 {
		return nil
	}
	pairs := make([]Pair, 0, len(counts))
	for k, c := range counts {
		pairs = append(pairs, Pair{Key: k, Count: c})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Key < pairs[j].Key
	})

	if len(pairs) <= n {
		return pairs
	}
	if mode == StrictTopN {
		return pairs[:n]
	}
	// keep everything tied with the n-th count
	cutoff := pairs[n-1].Count
	end := n
	for end < len(pairs) && pairs[end].Count == cutoff {
		end++
	}
	return pairs[:end]
}

// Padded widens pairs to exactly n entries, filling with ("", 0).
// Used by fixed-width consumers that chart a constant number of slots
func Padded(pairs []Pair, n int) []Pair {
	if len(pairs) >= n {
		return pairs[:n]
	}
	out := make([]Pair, n)
	copy(out, pairs)
	return out
}
