package issuetrack

import (
	"sort"
	"testing"
	"time"

	"ghpulse/internal/core/events"
)

const repo = "https://github.com/octo/widgets"

func issueEvent(num int64, action string, at time.Time) events.Event {
	return events.Event{
		RepoURL:       repo,
		Type:          events.IssuesEvent,
		PayloadAction: action,
		PayloadIssue:  num,
		CreatedAt:     at,
	}
}

func TestResolutionDays(t *testing.T) {
	t0 := time.Date(2021, 6, 1, 9, 0, 0, 0, time.UTC)
	table := events.NewTable([]events.Event{
		// issue 1: open then close 5.5 days later, truncates to 5
		issueEvent(1, "opened", t0),
		issueEvent(1, "closed", t0.Add(5*24*time.Hour+12*time.Hour)),
		// issue 2: closed twice, the final close wins
		issueEvent(2, "opened", t0),
		issueEvent(2, "closed", t0.Add(24*time.Hour)),
		issueEvent(2, "closed", t0.Add(3*24*time.Hour)),
		// issue 3: open only, never resolved
		issueEvent(3, "opened", t0),
		// issue 4: close only, open predates the log window
		issueEvent(4, "closed", t0),
	})

	got := ResolutionDays(table, repo)
	sort.Ints(got)
	if len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Fatalf("got %v want [3 5]", got)
	}
}

func TestResolutionDaysReopenIgnored(t *testing.T) {
	t0 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	table := events.NewTable([]events.Event{
		issueEvent(7, "opened", t0),
		issueEvent(7, "closed", t0.Add(2*24*time.Hour)),
		issueEvent(7, "opened", t0.Add(10*24*time.Hour)),
		issueEvent(7, "closed", t0.Add(12*24*time.Hour)),
	})
	got := ResolutionDays(table, repo)
	if len(got) != 1 || got[0] != 12 {
		t.Fatalf("first open and final close must pair: %v", got)
	}
}

func TestResolutionDaysDiscardsNonPositive(t *testing.T) {
	t0 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	table := events.NewTable([]events.Event{
		// close at the exact open instant
		issueEvent(1, "opened", t0),
		issueEvent(1, "closed", t0),
		// close before open
		issueEvent(2, "opened", t0),
		issueEvent(2, "closed", t0.Add(-time.Hour)),
	})
	if got := ResolutionDays(table, repo); len(got) != 0 {
		t.Fatalf("non-positive durations must be discarded, got %v", got)
	}
}

func TestResolutionDaysDedupesExactRows(t *testing.T) {
	t0 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	open := issueEvent(1, "opened", t0)
	closeEv := issueEvent(1, "closed", t0.Add(48*time.Hour))
	table := events.NewTable([]events.Event{open, open, closeEv, closeEv})
	got := ResolutionDays(table, repo)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("duplicate rows must collapse to one sample: %v", got)
	}
}

func TestResolutionDaysFilters(t *testing.T) {
	t0 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	other := issueEvent(1, "opened", t0)
	other.RepoURL = "https://github.com/other/repo"
	notIssue := issueEvent(2, "opened", t0)
	notIssue.Type = "PushEvent"
	noNumber := issueEvent(0, "opened", t0)
	table := events.NewTable([]events.Event{other, notIssue, noNumber})
	if got := ResolutionDays(table, repo); len(got) != 0 {
		t.Fatalf("foreign, non-issue, and numberless events must be ignored: %v", got)
	}
}
