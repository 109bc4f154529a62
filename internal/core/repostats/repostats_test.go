package repostats

import (
	"testing"
	"time"

	"ghpulse/internal/core/events"
	"ghpulse/internal/core/rank"
)

const repo = "https://github.com/octo/widgets"

func TestWatchersContributors(t *testing.T) {
	table := events.NewTable([]events.Event{
		{RepoURL: repo, Type: "PushEvent", ActorLogin: "ana", RepoWatchers: 10},
		{RepoURL: repo, Type: events.WatchEvent, ActorLogin: "fan", RepoWatchers: 25},
		{RepoURL: repo, Type: "IssuesEvent", ActorLogin: "bob", RepoWatchers: 15},
		{RepoURL: repo, Type: events.WatchEvent, ActorLogin: "fan", RepoWatchers: 25},
		{RepoURL: repo, Type: "PushEvent", ActorLogin: "cara", RepoWatchers: 5},
		{RepoURL: "https://github.com/other/repo", Type: "PushEvent", ActorLogin: "zed", RepoWatchers: 99},
	})
	peak, contribs := WatchersContributors(table, repo)
	if peak != 25 {
		t.Fatalf("peak watchers %d want 25 (max snapshot, not the latest)", peak)
	}
	if contribs != 3 {
		t.Fatalf("contributors %d want 3 (watch-event actors excluded)", contribs)
	}
}

func TestWatchersContributorsSkipsBlankLogins(t *testing.T) {
	table := events.NewTable([]events.Event{
		{RepoURL: repo, Type: "PushEvent", ActorLogin: "", RepoWatchers: 1},
		{RepoURL: repo, Type: "PushEvent", ActorLogin: "ana", RepoWatchers: 2},
	})
	if _, contribs := WatchersContributors(table, repo); contribs != 1 {
		t.Fatalf("blank logins must not count, got %d", contribs)
	}
}

func TestWatchersContributorsUnknownRepo(t *testing.T) {
	table := events.NewTable([]events.Event{{RepoURL: repo, RepoWatchers: 5}})
	peak, contribs := WatchersContributors(table, "https://github.com/none/none")
	if peak != 0 || contribs != 0 {
		t.Fatalf("unknown repo must report zeroes, got %d/%d", peak, contribs)
	}
}

func TestPopular(t *testing.T) {
	table := events.NewTable([]events.Event{
		{RepoURL: "https://github.com/a/a"},
		{RepoURL: "https://github.com/a/a"},
		{RepoURL: "https://github.com/b/b"},
	})
	got := Popular(table, 2, rank.StrictTopN)
	if len(got) != 2 || got[0].Key != "https://github.com/a/a" || got[0].Count != 2 {
		t.Fatalf("unexpected ranking: %v", got)
	}
}

func TestLocationsUsesOwnersEarliestEvent(t *testing.T) {
	t0 := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	table := events.NewTable([]events.Event{
		// octo reported Berlin first, then moved; the earliest report wins
		{RepoURL: repo, RepoOwner: "octo", ActorLogin: "octo", ActorLocation: "Lisbon", CreatedAt: t0.Add(48 * time.Hour)},
		{RepoURL: repo, RepoOwner: "octo", ActorLogin: "octo", ActorLocation: "Berlin", CreatedAt: t0},
		// ghost owns a repo but never authored an event
		{RepoURL: "https://github.com/ghost/ship", RepoOwner: "ghost", ActorLogin: "visitor", ActorLocation: "Oslo", CreatedAt: t0},
	})
	got := Locations(table)
	if got["Berlin"] != 1 {
		t.Fatalf("earliest-event location must win: %v", got)
	}
	if _, ok := got["Lisbon"]; ok {
		t.Fatalf("later location must not count: %v", got)
	}
	if _, ok := got["Oslo"]; ok {
		t.Fatalf("non-owner locations must not count: %v", got)
	}
}

func TestRepoNames(t *testing.T) {
	table := events.NewTable([]events.Event{
		{RepoURL: repo, RepoName: ""},
		{RepoURL: repo, RepoName: "widgets"},
	})
	got := RepoNames(table, []string{repo, "https://github.com/none/none"})
	if got[0] != "widgets" {
		t.Fatalf("want first non-empty name, got %q", got[0])
	}
	if got[1] != "https://github.com/none/none" {
		t.Fatalf("unnamed repos fall back to the url, got %q", got[1])
	}
}
