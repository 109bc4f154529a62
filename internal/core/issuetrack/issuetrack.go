// Package issuetrack correlates paired opened/closed issue events into
// resolution-time samples.
//
// The matcher is a hash join on issue number: earliest open wins (reopens
// ignored), latest close wins, and issues missing either side are silently
// excluded rather than reported. Non-positive durations are data artifacts
// from malformed or out-of-order logs and are discarded the same way
package issuetrack

import (
	"ghpulse/internal/core/events"
)

const (
	actionOpened = "opened"
	actionClosed = "closed"
)

// ResolutionDays returns the open-to-close duration, in whole days, for
// every issue of the repository that has both an opened and a closed event.
// Order of the result is not significant
func ResolutionDays(t *events.Table, repoURL string) []int {
	var issues []events.Event
	for _, e := range t.All() {
		if e.RepoURL == repoURL && e.Type == events.IssuesEvent {
			issues = append(issues, e)
		}
	}
	issues = dedupe(issues)

	opened := map[int64]events.Event{}
	closed := map[int64]events.Event{}
	for _, e := range issues {
		if e.PayloadIssue == 0 {
			continue
		}
		switch e.PayloadAction {
		case actionOpened:
			// first open wins; a reopen never resets the clock
			if prev, ok := opened[e.PayloadIssue]; !ok || e.CreatedAt.Before(prev.CreatedAt) {
				opened[e.PayloadIssue] = e
			}
		case actionClosed:
			// final close wins
			if prev, ok := closed[e.PayloadIssue]; !ok || e.CreatedAt.After(prev.CreatedAt) {
				closed[e.PayloadIssue] = e
			}
		}
	}

	var out []int
	for num, open := range opened {
		cl, ok := closed[num]
		if !ok {
			continue
		}
		d := cl.CreatedAt.Sub(open.CreatedAt)
		if d <= 0 {
			continue
		}
		out = append(out, int(d.Hours()/24))
	}
	return out
}

// dedupe drops exact-duplicate event rows, keeping first appearance
func dedupe(evs []events.Event) []events.Event {
	seen := map[events.Event]struct{}{}
	out := evs[:0]
	for _, e := range evs {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
