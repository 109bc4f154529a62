// Package timebucket divides the 24-hour day into equal-width windows and
// cross-tabulates event activity against them.
//
// All views share one bucket assignment: an event lands in bucket
// hour/(24/chunks). chunks must evenly divide 24 so the windows cover the
// day exactly once with no gaps or overlap
package timebucket

import (
	"fmt"
	"sort"

	"ghpulse/internal/core/events"
	perr "ghpulse/internal/platform/errors"
)

// CheckChunks validates the bucket count. Violations are caller errors
// reported before any bucketing work starts
func CheckChunks(chunks int) error {
	if chunks < 1 || chunks > 24 || 24%chunks != 0 {
		return perr.Validationf("chunks must evenly divide 24, got %d", chunks)
	}
	return nil
}

// Index returns the bucket for an hour of day given a valid chunks value
func Index(hour, chunks int) int {
	return hour / (24 / chunks)
}

// Labels returns presentation labels for each window, e.g. "06:00-11:59"
func Labels(chunks int) []string {
	width := 24 / chunks
	out := make([]string, chunks)
	for i := 0; i < chunks; i++ {
		out[i] = fmt.Sprintf("%02d:00-%02d:59", i*width, (i+1)*width-1)
	}
	return out
}

// Counts buckets every event by creation hour and returns per-bucket totals
func Counts(evs []events.Event, chunks int) ([]int, error) {
	if err := CheckChunks(chunks); err != nil {
		return nil, err
	}
	out := make([]int, chunks)
	for _, e := range sortedByCreatedAt(evs) {
		out[Index(e.CreatedAt.Hour(), chunks)]++
	}
	return out, nil
}

// ByType returns, per bucket, a count for every event type in types.
// Types with no events in a bucket are present with count 0, so every
// bucket map carries the complete key set
func ByType(evs []events.Event, chunks int, types []string) ([]map[string]int, error) {
	if err := CheckChunks(chunks); err != nil {
		return nil, err
	}
	out := make([]map[string]int, chunks)
	for i := range out {
		m := make(map[string]int, len(types))
		for _, t := range types {
			m[t] = 0
		}
		out[i] = m
	}
	for _, e := range sortedByCreatedAt(evs) {
		out[Index(e.CreatedAt.Hour(), chunks)][e.Type]++
	}
	return out, nil
}

// Split is a per-bucket (main country, other countries) pair
type Split struct {
	Main  int `json:"main"`
	Other int `json:"other"`
}

// CountrySplit partitions events into the designated main country versus
// every other known country. Events with an empty country are excluded
// from this view entirely
func CountrySplit(evs []events.Event, chunks int, mainCountry string) ([]Split, error) {
	if err := CheckChunks(chunks); err != nil {
		return nil, err
	}
	out := make([]Split, chunks)
	for _, e := range sortedByCreatedAt(evs) {
		if e.Country == "" {
			continue
		}
		b := Index(e.CreatedAt.Hour(), chunks)
		if e.Country == mainCountry {
			out[b].Main++
		} else {
			out[b].Other++
		}
	}
	return out, nil
}

// WeekdayMatrix tabulates bucket x weekday counts and returns the transposed
// form: 7 rows (Monday=0 .. Sunday=6), chunks columns
func WeekdayMatrix(evs []events.Event, chunks int) ([][]int, error) {
	if err := CheckChunks(chunks); err != nil {
		return nil, err
	}
	// bucket-major intermediate, then transpose to weekday-major rows
	byBucket := make([][]int, chunks)
	for i := range byBucket {
		byBucket[i] = make([]int, 7)
	}
	for _, e := range sortedByCreatedAt(evs) {
		b := Index(e.CreatedAt.Hour(), chunks)
		// Go has Sunday=0; the matrix wants Monday=0
		wd := (int(e.CreatedAt.Weekday()) + 6) % 7
		byBucket[b][wd]++
	}
	out := make([][]int, 7)
	for wd := 0; wd < 7; wd++ {
		row := make([]int, chunks)
		for b := 0; b < chunks; b++ {
			row[b] = byBucket[b][wd]
		}
		out[wd] = row
	}
	return out, nil
}

// sortedByCreatedAt orders events chronologically before any grouping that
// assumes contiguous buckets per key
func sortedByCreatedAt(evs []events.Event) []events.Event {
	cp := make([]events.Event, len(evs))
	copy(cp, evs)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].CreatedAt.Before(cp[j].CreatedAt) })
	return cp
}
