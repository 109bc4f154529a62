package load

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"ghpulse/internal/core/events"
	perr "ghpulse/internal/platform/errors"
)

// column names in the snapshot schema
const (
	colRepoURL         = "repository_url"
	colRepoCreatedAt   = "repository_created_at"
	colRepoName        = "repository_name"
	colRepoDescription = "repository_description"
	colRepoOwner       = "repository_owner"
	colRepoOpenIssues  = "repository_open_issues"
	colRepoWatchers    = "repository_watchers"
	colRepoLanguage    = "repository_language"
	colActorLogin      = "actor_attributes_login"
	colActorName       = "actor_attributes_name"
	colActorLocation   = "actor_attributes_location"
	colCreatedAt       = "created_at"
	colPayloadAction   = "payload_action"
	colPayloadNumber   = "payload_number"
	colPayloadIssue    = "payload_issue"
	colType            = "type"
)

// CSVFile reads one header-driven CSV file of events
func CSVFile(path string) ([]events.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeData, "open %s", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // header decides; short rows are padded below

	header, err := r.Read()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeData, "read header of %s", path)
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	if _, ok := idx[colRepoURL]; !ok {
		return nil, perr.Dataf("%s: missing %s column", path, colRepoURL)
	}
	if _, ok := idx[colCreatedAt]; !ok {
		return nil, perr.Dataf("%s: missing %s column", path, colCreatedAt)
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []events.Event
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeData, "%s line %d", path, line)
		}

		created, err := parseCreatedAt(field(row, colCreatedAt))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeData, "%s line %d", path, line)
		}

		out = append(out, events.Event{
			RepoURL:         field(row, colRepoURL),
			RepoCreatedAt:   field(row, colRepoCreatedAt),
			RepoName:        field(row, colRepoName),
			RepoDescription: field(row, colRepoDescription),
			RepoOwner:       field(row, colRepoOwner),
			RepoOpenIssues:  lenientInt(field(row, colRepoOpenIssues)),
			RepoWatchers:    lenientInt(field(row, colRepoWatchers)),
			RepoLanguage:    field(row, colRepoLanguage),
			ActorLogin:      field(row, colActorLogin),
			ActorName:       field(row, colActorName),
			ActorLocation:   field(row, colActorLocation),
			CreatedAt:       created,
			PayloadAction:   field(row, colPayloadAction),
			PayloadIssue:    issueNumber(field(row, colPayloadIssue), field(row, colPayloadNumber)),
			Type:            field(row, colType),
		})
	}
	return out, nil
}

// lenientInt parses numeric-looking text; blanks and floats like "25.0" are tolerated
func lenientInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// issueNumber prefers payload_issue over payload_number; later snapshots use
// payload_issue as the correlation key
func issueNumber(issue, number string) int64 {
	if v := lenientInt64(issue); v != 0 {
		return v
	}
	return lenientInt64(number)
}

func lenientInt64(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
