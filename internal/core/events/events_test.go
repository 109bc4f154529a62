package events

import (
	"reflect"
	"testing"
	"time"
)

func TestNewTableCopiesAndComputesTypes(t *testing.T) {
	src := []Event{
		{Type: "WatchEvent"},
		{Type: "IssuesEvent"},
		{Type: "WatchEvent"},
		{Type: ""},
	}
	table := NewTable(src)
	if table.Len() != 4 {
		t.Fatalf("want 4 events, got %d", table.Len())
	}
	if want := []string{"IssuesEvent", "WatchEvent"}; !reflect.DeepEqual(table.Types(), want) {
		t.Fatalf("types got %v want %v", table.Types(), want)
	}

	// mutating the source after construction must not leak into the table
	src[0].Type = "PushEvent"
	if table.All()[0].Type != "WatchEvent" {
		t.Fatal("table must own a copy of the input slice")
	}
}

func TestSortedByCreatedAt(t *testing.T) {
	t0 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	table := NewTable([]Event{
		{ActorLogin: "c", CreatedAt: t0.Add(2 * time.Hour)},
		{ActorLogin: "a", CreatedAt: t0},
		{ActorLogin: "b", CreatedAt: t0.Add(time.Hour)},
	})
	got := table.SortedByCreatedAt()
	if got[0].ActorLogin != "a" || got[1].ActorLogin != "b" || got[2].ActorLogin != "c" {
		t.Fatalf("not chronological: %v", got)
	}
	// the table's own order is untouched
	if table.All()[0].ActorLogin != "c" {
		t.Fatal("sorting must not mutate the table")
	}
}

func TestForRepo(t *testing.T) {
	table := NewTable([]Event{
		{RepoURL: "https://github.com/a/a"},
		{RepoURL: "https://github.com/b/b"},
		{RepoURL: "https://github.com/a/a"},
	})
	if got := table.ForRepo("https://github.com/a/a"); len(got) != 2 {
		t.Fatalf("want 2 events, got %d", len(got))
	}
	if got := table.ForRepo("https://github.com/z/z"); got != nil {
		t.Fatalf("unknown repo must yield nil, got %v", got)
	}
}

type mapLookup map[string]string

func (m mapLookup) Country(loc string) (string, bool) {
	c, ok := m[loc]
	return c, ok
}

func TestEnrich(t *testing.T) {
	lookup := mapLookup{"Berlin": "Germany", "Lyon": "France"}
	evs := []Event{
		{ActorLocation: "Berlin"},
		{ActorLocation: "  Lyon  "},
		{ActorLocation: "Atlantis"},
		{ActorLocation: ""},
		{ActorLocation: "Atlantis", Country: "stale"},
	}
	Enrich(evs, lookup)
	want := []string{"Germany", "France", "", "", ""}
	for i, w := range want {
		if evs[i].Country != w {
			t.Fatalf("event %d: country %q want %q", i, evs[i].Country, w)
		}
	}

	// second pass changes nothing
	before := make([]Event, len(evs))
	copy(before, evs)
	Enrich(evs, lookup)
	if !reflect.DeepEqual(evs, before) {
		t.Fatal("enrich must be idempotent")
	}
}
