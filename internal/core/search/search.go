// Package search filters repositories by description keyword and buckets
// their creation dates by year
package search

import (
	"sort"
	"strings"

	"ghpulse/internal/core/events"

	"golang.org/x/text/cases"
)

// YearCount is one (year, repository count) sample, year as a 4-char string
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

var fold = cases.Fold()

// ReposByKeywordPerYear returns, per creation year in ascending order, the
// number of distinct repositories whose description contains keyword.
// Matching is case-insensitive via Unicode case folding; repositories with
// no description never match; each repository counts once, at its first
// appearance in the table. Years with no match are absent from the result
func ReposByKeywordPerYear(t *events.Table, keyword string) []YearCount {
	needle := fold.String(keyword)
	if needle == "" {
		return nil
	}

	seen := map[string]struct{}{}
	byYear := map[string]int{}
	for _, e := range t.All() {
		if e.RepoDescription == "" {
			continue
		}
		if !strings.Contains(fold.String(e.RepoDescription), needle) {
			continue
		}
		if _, dup := seen[e.RepoURL]; dup {
			continue
		}
		seen[e.RepoURL] = struct{}{}

		if len(e.RepoCreatedAt) < 4 {
			continue
		}
		byYear[e.RepoCreatedAt[:4]]++
	}

	out := make([]YearCount, 0, len(byYear))
	for y, c := range byYear {
		out = append(out, YearCount{Year: y, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
