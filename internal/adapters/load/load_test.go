package load

import (
	"testing"

	"ghpulse/internal/platform/testkit"
)

const csvHeader = "repository_url,repository_created_at,repository_name,repository_language," +
	"repository_watchers,actor_attributes_login,actor_attributes_location," +
	"created_at,payload_action,payload_number,payload_issue,type\n"

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"", FormatCSV},
		{"csv", FormatCSV},
		{" CSV ", FormatCSV},
		{"ndjson", FormatNDJSON},
		{"json", FormatNDJSON},
		{"jsonl", FormatNDJSON},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if err != nil || got != c.want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
	}
	if _, err := ParseFormat("parquet"); err == nil {
		t.Fatal("unknown format must error")
	}
}

func TestCSVFile(t *testing.T) {
	content := csvHeader +
		`https://github.com/octo/widgets,2019-03-01,widgets,Go,25.0,ana,Berlin,2021-03-01 07:15:00 -0700,opened,,17,IssuesEvent` + "\n" +
		`https://github.com/octo/widgets,2019-03-01,widgets,Go,,bob,,2021-03-01T09:00:00Z,,,,WatchEvent` + "\n"
	path := testkit.WriteFile(t, t.TempDir(), "events.csv", content)

	evs, err := CSVFile(path)
	if err != nil {
		t.Fatalf("csv load: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("want 2 events, got %d", len(evs))
	}

	e := evs[0]
	if e.RepoURL != "https://github.com/octo/widgets" || e.RepoLanguage != "Go" {
		t.Fatalf("row fields wrong: %+v", e)
	}
	if e.RepoWatchers != 25 {
		t.Fatalf("float watcher count must coerce to 25, got %d", e.RepoWatchers)
	}
	if e.PayloadIssue != 17 || e.PayloadAction != "opened" {
		t.Fatalf("issue payload wrong: %+v", e)
	}
	if e.CreatedAt.Hour() != 7 {
		t.Fatalf("created_at hour %d want 7", e.CreatedAt.Hour())
	}
	if evs[1].RepoWatchers != 0 || evs[1].PayloadIssue != 0 {
		t.Fatalf("blank numeric cells must parse as zero: %+v", evs[1])
	}
}

func TestCSVFilePrefersPayloadIssue(t *testing.T) {
	content := csvHeader +
		`https://github.com/a/a,2019-01-01,a,Go,1,ana,,2021-03-01 07:00:00 -0700,opened,99,17,IssuesEvent` + "\n" +
		`https://github.com/a/a,2019-01-01,a,Go,1,ana,,2021-03-01 08:00:00 -0700,closed,99,,IssuesEvent` + "\n"
	path := testkit.WriteFile(t, t.TempDir(), "events.csv", content)

	evs, err := CSVFile(path)
	if err != nil {
		t.Fatalf("csv load: %v", err)
	}
	if evs[0].PayloadIssue != 17 {
		t.Fatalf("payload_issue must win over payload_number, got %d", evs[0].PayloadIssue)
	}
	if evs[1].PayloadIssue != 99 {
		t.Fatalf("payload_number is the fallback, got %d", evs[1].PayloadIssue)
	}
}

func TestCSVFileMissingRequiredColumn(t *testing.T) {
	path := testkit.WriteFile(t, t.TempDir(), "events.csv", "repository_name,created_at\nwidgets,2021-03-01 07:00:00 -0700\n")
	if _, err := CSVFile(path); err == nil {
		t.Fatal("missing repository_url must fail the load")
	}
}

func TestCSVFileBadCreatedAt(t *testing.T) {
	path := testkit.WriteFile(t, t.TempDir(), "events.csv", "repository_url,created_at\nhttps://github.com/a/a,yesterday\n")
	if _, err := CSVFile(path); err == nil {
		t.Fatal("unparseable created_at must fail the load")
	}
}

func TestEventsDirectoryConcatenatesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	testkit.WriteFile(t, dir, "02.csv", csvHeader+
		`https://github.com/b/b,2019-01-01,b,Go,1,bob,,2021-03-02 07:00:00 -0700,,,,PushEvent`+"\n")
	testkit.WriteFile(t, dir, "01.csv", csvHeader+
		`https://github.com/a/a,2019-01-01,a,Go,1,ana,,2021-03-01 07:00:00 -0700,,,,PushEvent`+"\n")
	testkit.WriteFile(t, dir, "notes.txt", "ignored")

	evs, err := Events(dir, FormatCSV)
	if err != nil {
		t.Fatalf("dir load: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("want 2 events, got %d", len(evs))
	}
	if evs[0].RepoURL != "https://github.com/a/a" || evs[1].RepoURL != "https://github.com/b/b" {
		t.Fatalf("files must concatenate in name order: %v, %v", evs[0].RepoURL, evs[1].RepoURL)
	}
}

func TestEventsDirectoryRejectsNDJSON(t *testing.T) {
	if _, err := Events(t.TempDir(), FormatNDJSON); err == nil {
		t.Fatal("directory input is csv only")
	}
}

func TestNDJSONFile(t *testing.T) {
	content := `{"repository_url":"https://github.com/a/a","repository_created_at":"2019-03-01","repository_watchers":"25","created_at":"2021-03-01T07:15:00Z","payload_issue":17,"payload_action":"opened","type":"IssuesEvent"}` + "\n" +
		"\n" +
		`not json at all` + "\n" +
		`{"repository_url":"https://github.com/b/b","repository_watchers":null,"payload_number":3,"created_at":"2021-03-01 09:00:00 -0700","type":"IssuesEvent"}` + "\n"
	path := testkit.WriteFile(t, t.TempDir(), "events.ndjson", content)

	evs, err := NDJSONFile(path)
	if err != nil {
		t.Fatalf("ndjson load: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("malformed and blank lines skip, want 2 events, got %d", len(evs))
	}
	if evs[0].RepoWatchers != 25 {
		t.Fatalf("string-encoded watcher count must coerce, got %d", evs[0].RepoWatchers)
	}
	if evs[0].PayloadIssue != 17 {
		t.Fatalf("payload_issue wrong: %d", evs[0].PayloadIssue)
	}
	if evs[1].PayloadIssue != 3 {
		t.Fatalf("payload_number fallback wrong: %d", evs[1].PayloadIssue)
	}
}

func TestNDJSONFileBadCreatedAt(t *testing.T) {
	path := testkit.WriteFile(t, t.TempDir(), "events.ndjson",
		`{"repository_url":"https://github.com/a/a","created_at":"tomorrow"}`+"\n")
	if _, err := NDJSONFile(path); err == nil {
		t.Fatal("unparseable created_at must fail the load")
	}
}

func TestParseCreatedAtLayouts(t *testing.T) {
	cases := []string{
		"2021-03-01 07:15:00 -0700",
		"2021/03/01 07:15:00 -0700",
		"2021-03-01T07:15:00Z",
		"2021-03-01 07:15:00",
		"2021-03-01T07:15:00",
	}
	for _, s := range cases {
		got, err := parseCreatedAt(s)
		if err != nil {
			t.Fatalf("parseCreatedAt(%q): %v", s, err)
		}
		if got.Hour() != 7 || got.Minute() != 15 {
			t.Fatalf("parseCreatedAt(%q) = %v", s, got)
		}
	}
	if _, err := parseCreatedAt("March 1st"); err == nil {
		t.Fatal("unknown layout must error")
	}
}

func TestEventsMissingPath(t *testing.T) {
	if _, err := Events("/does/not/exist", FormatCSV); err == nil {
		t.Fatal("missing path must error")
	}
}
