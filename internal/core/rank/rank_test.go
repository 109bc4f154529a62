package rank

import (
	"reflect"
	"testing"

	"ghpulse/internal/core/events"
)

func evByLanguage(langs ...string) []events.Event {
	out := make([]events.Event, len(langs))
	for i, l := range langs {
		out[i] = events.Event{RepoLanguage: l}
	}
	return out
}

func lang(e events.Event) string { return e.RepoLanguage }

func TestCountByExcludesEmptyKeys(t *testing.T) {
	evs := evByLanguage("Go", "", "Go", "Ruby", "")
	counts := CountBy(evs, lang)
	if len(counts) != 2 {
		t.Fatalf("want 2 groups, got %d: %v", len(counts), counts)
	}
	if counts["Go"] != 2 || counts["Ruby"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Fatalf("counts must sum to the non-empty events, got %d", total)
	}
}

func TestTopNOrdering(t *testing.T) {
	evs := evByLanguage("Go", "Go", "Go", "Ruby", "Ruby", "Zig")
	got := TopN(evs, lang, 10, StrictTopN)
	want := []Pair{{"Go", 3}, {"Ruby", 2}, {"Zig", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Fatalf("counts must be non-increasing: %v", got)
		}
	}
}

func TestTopNTieBreaksByKeyAsc(t *testing.T) {
	evs := evByLanguage("Ruby", "Go", "Zig", "Go", "Ruby", "Zig")
	got := TopN(evs, lang, 3, StrictTopN)
	want := []Pair{{"Go", 2}, {"Ruby", 2}, {"Zig", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCutStrictTruncatesKeepTiesExtends(t *testing.T) {
	counts := map[string]int{"a": 5, "b": 3, "c": 3, "d": 3, "e": 1}

	strict := Cut(counts, 2, StrictTopN)
	if len(strict) != 2 {
		t.Fatalf("strict mode must return exactly n, got %v", strict)
	}
	if strict[0].Key != "a" || strict[1].Key != "b" {
		t.Fatalf("strict order wrong: %v", strict)
	}

	kept := Cut(counts, 2, KeepTies)
	if len(kept) != 4 {
		t.Fatalf("keep-ties must include every group at the cutoff count, got %v", kept)
	}
	for _, p := range kept[1:] {
		if p.Count != 3 {
			t.Fatalf("tied tail must all carry the cutoff count: %v", kept)
		}
	}
}

func TestCutNLargerThanGroups(t *testing.T) {
	counts := map[string]int{"a": 2, "b": 1}
	for _, mode := range []TieMode{StrictTopN, KeepTies} {
		got := Cut(counts, 10, mode)
		if len(got) != 2 {
			t.Fatalf("mode %s: want all groups, got %v", mode, got)
		}
	}
}

func TestCutZeroN(t *testing.T) {
	if got := Cut(map[string]int{"a": 1}, 0, StrictTopN); got != nil {
		t.Fatalf("n<=0 must yield nil, got %v", got)
	}
}

func TestPadded(t *testing.T) {
	got := Padded([]Pair{{"Go", 11}, {"Ruby", 1}, {"Zig", 1}}, 5)
	want := []Pair{{"Go", 11}, {"Ruby", 1}, {"Zig", 1}, {"", 0}, {"", 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := Padded(want, 3); len(got) != 3 {
		t.Fatalf("padded must also truncate to n, got %v", got)
	}
}

func TestTieModeString(t *testing.T) {
	if StrictTopN.String() != "strict-top-n" || KeepTies.String() != "keep-ties" {
		t.Fatalf("unexpected mode names: %q %q", StrictTopN, KeepTies)
	}
}
