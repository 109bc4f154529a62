// Package load parses CSV and newline-delimited JSON event snapshots into
// the normalized event slice the analytics session is built from.
//
// A path may be a single file or a directory of CSV files, which are
// concatenated into one table in filename order
package load

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"ghpulse/internal/core/events"
	perr "ghpulse/internal/platform/errors"
)

// Format selects the source encoding
type Format string

const (
	// FormatCSV is a header-driven comma separated file
	FormatCSV Format = "csv"
	// FormatNDJSON is one JSON event object per line
	FormatNDJSON Format = "ndjson"
)

// ParseFormat maps a user-supplied format string, defaulting to CSV
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "ndjson", "json", "jsonl":
		return FormatNDJSON, nil
	default:
		return "", perr.InvalidArgf("unknown format %q (want csv or ndjson)", s)
	}
}

// Events reads path (file or CSV directory) in the given format
func Events(path string, format Format) ([]events.Event, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeData, "stat %s", path)
	}
	if fi.IsDir() {
		if format != FormatCSV {
			return nil, perr.InvalidArgf("directory input is only supported for csv")
		}
		return csvDir(path)
	}
	switch format {
	case FormatCSV:
		return CSVFile(path)
	case FormatNDJSON:
		return NDJSONFile(path)
	default:
		return nil, perr.InvalidArgf("unknown format %q", string(format))
	}
}

// csvDir concatenates every *.csv in dir, in filename order
func csvDir(dir string) ([]events.Event, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeData, "read dir %s", dir)
	}
	var names []string
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(strings.ToLower(ent.Name()), ".csv") {
			continue
		}
		names = append(names, ent.Name())
	}
	if len(names) == 0 {
		return nil, perr.Dataf("no csv files in %s", dir)
	}
	sort.Strings(names)

	var out []events.Event
	for _, name := range names {
		evs, err := CSVFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, evs...)
	}
	return out, nil
}

// timestamp layouts observed across snapshot exports
var createdAtLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006/01/02 15:04:05 -0700",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseCreatedAt tries each known layout in order
func parseCreatedAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, perr.Dataf("unparseable created_at %q", s)
}
