// Package events defines the normalized event record and the immutable
// in-memory table every analysis reads from.
//
// A Table is built exactly once per analysis session, after the loader has
// parsed the source files and enrichment has derived the country field.
// Nothing mutates it afterwards; all queries are read-only scans.
package events

import (
	"sort"
	"time"
)

// WatchEvent is the event type excluded from contributor counting
const WatchEvent = "WatchEvent"

// IssuesEvent is the event type the issue lifecycle matcher consumes
const IssuesEvent = "IssuesEvent"

// Event is one logged GitHub activity record
type Event struct {
	RepoURL         string    // stable repository identifier
	RepoCreatedAt   string    // date string, "YYYY-MM-DD..." prefix is significant
	RepoName        string    // nullable, empty when absent
	RepoDescription string    // nullable
	RepoOwner       string    // nullable
	RepoOpenIssues  int       // snapshot at event time
	RepoWatchers    int       // snapshot at event time, not monotonic
	RepoLanguage    string    // nullable
	ActorLogin      string    // nullable
	ActorName       string    // nullable
	ActorLocation   string    // free text, may not match any country
	CreatedAt       time.Time // the event's occurrence time, primary ordering key
	PayloadAction   string    // e.g. "opened"/"closed" for issue events
	PayloadIssue    int64     // issue/PR number within its repository, 0 when absent
	Type            string    // event-type discriminator, e.g. "WatchEvent"
	Country         string    // derived by enrichment; empty means unknown
}

// Table is the immutable event collection queries run against
type Table struct {
	events []Event
	types  []string
}

// NewTable copies evs into a Table and precomputes the distinct event types
func NewTable(evs []Event) *Table {
	cp := make([]Event, len(evs))
	copy(cp, evs)

	seen := map[string]struct{}{}
	for _, e := range cp {
		if e.Type != "" {
			seen[e.Type] = struct{}{}
		}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)

	return &Table{events: cp, types: types}
}

// Len returns the number of events in the table
func (t *Table) Len() int { return len(t.events) }

// All returns the backing event slice. Callers must treat it as read-only
func (t *Table) All() []Event { return t.events }

// Types returns the sorted set of event types observed anywhere in the table
func (t *Table) Types() []string { return t.types }

// SortedByCreatedAt returns a fresh slice sorted chronologically.
// Queries that depend on chronological grouping must use this rather than
// assume anything about input order
func (t *Table) SortedByCreatedAt() []Event {
	cp := make([]Event, len(t.events))
	copy(cp, t.events)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].CreatedAt.Before(cp[j].CreatedAt) })
	return cp
}

// ForRepo returns the events whose RepoURL equals repoURL, in table order
func (t *Table) ForRepo(repoURL string) []Event {
	var out []Event
	for _, e := range t.events {
		if e.RepoURL == repoURL {
			out = append(out, e)
		}
	}
	return out
}
