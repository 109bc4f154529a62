package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("GHPULSE_TEST_NAME", "  value  ")
	c := New().Prefix("GHPULSE_TEST_")
	if got := c.Get("NAME", "def"); got != "value" {
		t.Fatalf("got %q", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("default not applied: %q", got)
	}
}

func TestGetBool(t *testing.T) {
	cases := map[string]bool{"1": true, "true": true, "YES": true, "0": false, "no": false, "banana": false}
	for val, want := range cases {
		t.Setenv("GHPULSE_TEST_FLAG", val)
		if got := New().Prefix("GHPULSE_TEST_").GetBool("FLAG", false); got != want {
			t.Fatalf("GetBool(%q) = %v want %v", val, got, want)
		}
	}
	if !New().GetBool("GHPULSE_TEST_ABSENT", true) {
		t.Fatal("default not applied")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("GHPULSE_TEST_N", "42")
	c := New().Prefix("GHPULSE_TEST_")
	if got := c.GetInt("N", 7); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("GHPULSE_TEST_N", "-3")
	if got := c.GetInt("N", 7); got != 7 {
		t.Fatalf("non-numeric text falls back to default, got %d", got)
	}
	if got := c.GetInt("ABSENT", 7); got != 7 {
		t.Fatalf("default not applied: %d", got)
	}
}

func TestPrefixComposes(t *testing.T) {
	t.Setenv("A_B_KEY", "x")
	if got := New().Prefix("A_").Prefix("B_").Get("KEY", ""); got != "x" {
		t.Fatalf("nested prefixes must compose: %q", got)
	}
}
