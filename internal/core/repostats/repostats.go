// Package repostats derives repository-level metrics: event-count
// popularity, peak watchers, unique contributors, and owner-location
// inference
package repostats

import (
	"ghpulse/internal/core/events"
	"ghpulse/internal/core/rank"
)

// Popular ranks repositories by raw event count. Every event counts once
// regardless of type; this is event frequency, not a watcher count
func Popular(t *events.Table, n int, mode rank.TieMode) []rank.Pair {
	return rank.TopN(t.All(), func(e events.Event) string { return e.RepoURL }, n, mode)
}

// WatchersContributors returns the peak observed watcher snapshot and the
// number of distinct contributor logins for one repository.
// Watcher counts are per-event snapshots, not cumulative, so peak is the
// max across events. Watching is not contribution: WatchEvent actors are
// excluded from the contributor set
func WatchersContributors(t *events.Table, repoURL string) (peakWatchers, contributors int) {
	logins := map[string]struct{}{}
	for _, e := range t.All() {
		if e.RepoURL != repoURL {
			continue
		}
		if e.RepoWatchers > peakWatchers {
			peakWatchers = e.RepoWatchers
		}
		if e.Type != events.WatchEvent && e.ActorLogin != "" {
			logins[e.ActorLogin] = struct{}{}
		}
	}
	return peakWatchers, len(logins)
}

// Locations tallies repositories per inferred owner location.
//
// The inference joins repository -> owner login -> the owner's own earliest
// authored event -> that event's self-reported location. Earliest-event is
// the documented tie-break when an owner reported different locations over
// time. Owners who never authored an event in the dataset resolve nothing,
// and their repositories contribute to no location's count
func Locations(t *events.Table) map[string]int {
	// earliest event per actor login, by created_at; input order breaks exact ties
	firstByLogin := map[string]events.Event{}
	for _, e := range t.SortedByCreatedAt() {
		if e.ActorLogin == "" {
			continue
		}
		if _, ok := firstByLogin[e.ActorLogin]; !ok {
			firstByLogin[e.ActorLogin] = e
		}
	}

	// one owner per repository url
	ownerByRepo := map[string]string{}
	for _, e := range t.All() {
		if e.RepoOwner == "" {
			continue
		}
		if _, ok := ownerByRepo[e.RepoURL]; !ok {
			ownerByRepo[e.RepoURL] = e.RepoOwner
		}
	}

	out := map[string]int{}
	for _, owner := range ownerByRepo {
		ev, ok := firstByLogin[owner]
		if !ok {
			continue
		}
		loc := ev.ActorLocation
		if loc == "" {
			continue
		}
		out[loc]++
	}
	return out
}

// TopLocations ranks the Locations tally for fixed-width consumers
func TopLocations(t *events.Table, n int, mode rank.TieMode) []rank.Pair {
	return rank.Cut(Locations(t), n, mode)
}

// RepoNames resolves display names for a set of repository urls, preferring
// the first non-empty name observed per url
func RepoNames(t *events.Table, urls []string) []string {
	names := map[string]string{}
	for _, e := range t.All() {
		if e.RepoName == "" {
			continue
		}
		if _, ok := names[e.RepoURL]; !ok {
			names[e.RepoURL] = e.RepoName
		}
	}
	out := make([]string, len(urls))
	for i, u := range urls {
		if n, ok := names[u]; ok {
			out[i] = n
		} else {
			out[i] = u
		}
	}
	return out
}
