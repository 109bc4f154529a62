package load

import (
	"bufio"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"ghpulse/internal/core/events"
	perr "ghpulse/internal/platform/errors"
	"ghpulse/internal/platform/logger"
)

const maxLineSize = 4 * 1024 * 1024

// flexInt accepts a JSON number, a numeric string, or null
type flexInt int64

func (v *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*v = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*v = flexInt(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*v = flexInt(int64(f))
		return nil
	}
	*v = 0
	return nil
}

// eventWire is the flat NDJSON record shape, one object per line
type eventWire struct {
	RepoURL         string  `json:"repository_url"`
	RepoCreatedAt   string  `json:"repository_created_at"`
	RepoName        string  `json:"repository_name"`
	RepoDescription string  `json:"repository_description"`
	RepoOwner       string  `json:"repository_owner"`
	RepoOpenIssues  flexInt `json:"repository_open_issues"`
	RepoWatchers    flexInt `json:"repository_watchers"`
	RepoLanguage    string  `json:"repository_language"`
	ActorLogin      string  `json:"actor_attributes_login"`
	ActorName       string  `json:"actor_attributes_name"`
	ActorLocation   string  `json:"actor_attributes_location"`
	CreatedAt       string  `json:"created_at"`
	PayloadAction   string  `json:"payload_action"`
	PayloadNumber   flexInt `json:"payload_number"`
	PayloadIssue    flexInt `json:"payload_issue"`
	Type            string  `json:"type"`
}

// NDJSONFile reads one newline-delimited JSON file of events.
// Malformed lines are skipped with a debug log rather than failing the load;
// lines whose created_at does not parse are a data-shape error
func NDJSONFile(path string) ([]events.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeData, "open %s", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	log := logger.Named("load")

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var out []events.Event
	line := 0
	skipped := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var w eventWire
		if err := json.Unmarshal([]byte(raw), &w); err != nil {
			skipped++
			log.Debug().Int("line", line).Err(err).Msg("skipping malformed line")
			continue
		}
		created, err := parseCreatedAt(w.CreatedAt)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeData, "%s line %d", path, line)
		}
		issue := int64(w.PayloadIssue)
		if issue == 0 {
			issue = int64(w.PayloadNumber)
		}
		out = append(out, events.Event{
			RepoURL:         w.RepoURL,
			RepoCreatedAt:   w.RepoCreatedAt,
			RepoName:        w.RepoName,
			RepoDescription: w.RepoDescription,
			RepoOwner:       w.RepoOwner,
			RepoOpenIssues:  int(w.RepoOpenIssues),
			RepoWatchers:    int(w.RepoWatchers),
			RepoLanguage:    w.RepoLanguage,
			ActorLogin:      w.ActorLogin,
			ActorName:       w.ActorName,
			ActorLocation:   w.ActorLocation,
			CreatedAt:       created,
			PayloadAction:   w.PayloadAction,
			PayloadIssue:    issue,
			Type:            w.Type,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeData, "scan %s", path)
	}
	if skipped > 0 {
		log.Info().Int("skipped", skipped).Int("loaded", len(out)).Str("path", path).Msg("ndjson load done")
	}
	return out, nil
}
