// Package countries loads the static location-to-country lookup table used
// by event enrichment.
//
// The table is a two-column CSV of location,country rows produced by a
// one-off geocoding pass. "No Results" is the geocoder's sentinel for an
// unmapped location and normalizes to the empty string, which downstream
// aggregates treat as unknown
package countries

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	perr "ghpulse/internal/platform/errors"
)

// NoResults is the sentinel country value meaning unmapped
const NoResults = "No Results"

// Lookup is an exact-string location to country table.
// It satisfies events.CountryLookup
type Lookup struct {
	byLocation map[string]string
}

// FromMap builds a Lookup from an in-memory table, normalizing the sentinel
func FromMap(m map[string]string) *Lookup {
	byLoc := make(map[string]string, len(m))
	for loc, country := range m {
		byLoc[strings.TrimSpace(loc)] = normalize(country)
	}
	return &Lookup{byLocation: byLoc}
}

// FromCSV reads a location,country file. A header row is detected and
// skipped when its first cell is literally "location"
func FromCSV(path string) (*Lookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeData, "open %s", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	byLoc := map[string]string{}
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeData, "read %s", path)
		}
		if len(row) < 2 {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(row[0]), "location") {
				continue
			}
		}
		byLoc[strings.TrimSpace(row[0])] = normalize(row[1])
	}
	return &Lookup{byLocation: byLoc}, nil
}

// Country returns the canonical country for an exact location string.
// The second return is false for unmapped locations and sentinel entries
func (l *Lookup) Country(location string) (string, bool) {
	c, ok := l.byLocation[strings.TrimSpace(location)]
	if !ok || c == "" {
		return "", false
	}
	return c, true
}

// Len returns the number of mapped entries, sentinel rows included
func (l *Lookup) Len() int { return len(l.byLocation) }

func normalize(country string) string {
	c := strings.TrimSpace(country)
	if c == NoResults {
		return ""
	}
	return c
}
