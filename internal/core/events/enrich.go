package events

import "strings"

// CountryLookup maps a free-text actor location to a canonical country name.
// The second return is false when the location is unmapped
type CountryLookup interface {
	Country(location string) (string, bool)
}

// Enrich derives the Country field on every event from its actor location.
// Unmatched locations become the empty string, never a phantom value.
// It re-derives from the unchanged location field each time, so running it
// again on an already-enriched slice is a no-op.
// Must run before the slice is handed to NewTable
func Enrich(evs []Event, lookup CountryLookup) {
	for i := range evs {
		loc := strings.TrimSpace(evs[i].ActorLocation)
		if loc == "" {
			evs[i].Country = ""
			continue
		}
		c, ok := lookup.Country(loc)
		if !ok {
			evs[i].Country = ""
			continue
		}
		evs[i].Country = c
	}
}
