// Package http exposes the analytics queries as read-only JSON endpoints
package http

import (
	"net/http"
	"strconv"

	phttp "ghpulse/internal/platform/net/http"
	"ghpulse/internal/services/analytics/domain"
)

type handlers struct {
	svc domain.ServicePort
}

// Register mounts the analytics routes. All endpoints are GETs driven by
// query parameters; the service seam validates them
func Register(r phttp.Router, svc domain.ServicePort) {
	h := &handlers{svc: svc}

	phttp.Get(r, "/languages", h.languages)
	phttp.Get(r, "/countries", h.countries)
	phttp.Get(r, "/country-languages", h.countryLanguages)

	phttp.Get(r, "/repos/popular", h.popularRepos)
	phttp.Get(r, "/repos/stats", h.repoStats)
	phttp.Get(r, "/repos/locations", h.repoLocations)

	phttp.Get(r, "/activity/histogram", h.activityHistogram)
	phttp.Get(r, "/activity/types", h.activityByType)
	phttp.Get(r, "/activity/country-split", h.activityCountrySplit)
	phttp.Get(r, "/activity/weekdays", h.activityWeekdays)

	phttp.Get(r, "/issues/resolution", h.resolution)
	phttp.Get(r, "/search/years", h.searchYears)

	phttp.Get(r, "/report", h.report)
}

// queryInt parses a query param with a default for absent/blank values.
// Garbage values fall through as 0 so the validator reports them
func queryInt(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

const (
	defaultTop    = 10
	defaultChunks = 4
)

func (h *handlers) languages(r *http.Request) (any, error) {
	return h.svc.TopLanguages(r.Context(), domain.TopInput{N: queryInt(r, "n", defaultTop)})
}

func (h *handlers) countries(r *http.Request) (any, error) {
	return h.svc.TopCountries(r.Context(), domain.TopInput{N: queryInt(r, "n", defaultTop)})
}

func (h *handlers) countryLanguages(r *http.Request) (any, error) {
	return h.svc.CountryLanguages(r.Context(), domain.CountryLanguagesInput{
		Country: r.URL.Query().Get("country"),
		N:       queryInt(r, "n", defaultTop),
	})
}

func (h *handlers) popularRepos(r *http.Request) (any, error) {
	return h.svc.PopularRepos(r.Context(), domain.TopInput{N: queryInt(r, "n", defaultTop)})
}

func (h *handlers) repoStats(r *http.Request) (any, error) {
	return h.svc.WatchersContributors(r.Context(), domain.RepoInput{Repo: r.URL.Query().Get("repo")})
}

func (h *handlers) repoLocations(r *http.Request) (any, error) {
	return h.svc.RepoLocations(r.Context(), domain.TopInput{N: queryInt(r, "n", defaultTop)})
}

func (h *handlers) activityHistogram(r *http.Request) (any, error) {
	return h.svc.ActivityHistogram(r.Context(), domain.ActivityInput{Chunks: queryInt(r, "chunks", defaultChunks)})
}

func (h *handlers) activityByType(r *http.Request) (any, error) {
	return h.svc.ActivityByType(r.Context(), domain.ActivityInput{Chunks: queryInt(r, "chunks", defaultChunks)})
}

func (h *handlers) activityCountrySplit(r *http.Request) (any, error) {
	return h.svc.ActivityCountrySplit(r.Context(), domain.CountrySplitInput{
		Chunks:  queryInt(r, "chunks", defaultChunks),
		Country: r.URL.Query().Get("country"),
	})
}

func (h *handlers) activityWeekdays(r *http.Request) (any, error) {
	return h.svc.ActivityWeekdays(r.Context(), domain.ActivityInput{Chunks: queryInt(r, "chunks", defaultChunks)})
}

func (h *handlers) resolution(r *http.Request) (any, error) {
	return h.svc.ResolutionDays(r.Context(), domain.RepoInput{Repo: r.URL.Query().Get("repo")})
}

func (h *handlers) searchYears(r *http.Request) (any, error) {
	return h.svc.SearchYears(r.Context(), domain.SearchInput{Keyword: r.URL.Query().Get("keyword")})
}

func (h *handlers) report(r *http.Request) (any, error) {
	return h.svc.Report(r.Context(), domain.ReportInput{
		Top:     queryInt(r, "top", defaultTop),
		Chunks:  queryInt(r, "chunks", defaultChunks),
		Keyword: r.URL.Query().Get("keyword"),
		Country: r.URL.Query().Get("country"),
	})
}
