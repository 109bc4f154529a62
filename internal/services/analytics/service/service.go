// Package service contains the analytics session and its query workflows
package service

import (
	"context"
	"time"

	"ghpulse/internal/core/events"
	"ghpulse/internal/core/issuetrack"
	"ghpulse/internal/core/rank"
	"ghpulse/internal/core/repostats"
	"ghpulse/internal/core/search"
	"ghpulse/internal/core/timebucket"
	"ghpulse/internal/platform/logger"
	"ghpulse/internal/platform/net/http/bind"
	"ghpulse/internal/services/analytics/domain"

	"github.com/google/uuid"
)

// weekday labels for the weekday matrix rows, Monday first
var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analytics service over one immutable table
type Svc struct {
	table   *events.Table
	id      string
	tieMode rank.TieMode
	log     *logger.Logger
}

// Options tunes a session
type Options struct {
	// TieMode applies to every ranking the session serves; default StrictTopN
	TieMode rank.TieMode
}

// New constructs an analytics session over an already-enriched table
func New(t *events.Table, opts ...Options) *Svc {
	if t == nil {
		panic("analytics.Service requires a non nil Table")
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	id := uuid.NewString()
	log := logger.Named("analytics")
	log.Info().
		Str("session_id", id).
		Int("events", t.Len()).
		Str("tie_mode", o.TieMode.String()).
		Msg("session ready")
	return &Svc{table: t, id: id, tieMode: o.TieMode, log: log}
}

// SessionID returns the id stamped into logs and report metadata
func (s *Svc) SessionID() string { return s.id }

// Table exposes the underlying table for read-only composition
func (s *Svc) Table() *events.Table { return s.table }

// TopLanguages ranks repository languages by event count
func (s *Svc) TopLanguages(ctx context.Context, in domain.TopInput) ([]domain.LabelCount, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	pairs := rank.TopN(s.table.All(), language, in.N, s.tieMode)
	return toLabelCounts(pairs), nil
}

// TopCountries ranks contributor countries by event count.
// Events with an unknown country are excluded, never a phantom category
func (s *Svc) TopCountries(ctx context.Context, in domain.TopInput) ([]domain.LabelCount, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	pairs := rank.TopN(s.table.All(), country, in.N, s.tieMode)
	return toLabelCounts(pairs), nil
}

// CountryLanguages ranks one country's languages, padded to exactly n slots
// for fixed-width consumers. The country filter applies before counting
func (s *Svc) CountryLanguages(ctx context.Context, in domain.CountryLanguagesInput) (domain.CountryLanguages, error) {
	if err := bind.Struct(in); err != nil {
		return domain.CountryLanguages{}, err
	}
	var filtered []events.Event
	for _, e := range s.table.All() {
		if e.Country == in.Country {
			filtered = append(filtered, e)
		}
	}
	pairs := rank.Padded(rank.TopN(filtered, language, in.N, rank.StrictTopN), in.N)
	return domain.CountryLanguages{Country: in.Country, Languages: toLabelCounts(pairs)}, nil
}

// PopularRepos ranks repositories by raw event count and attaches the
// watcher/contributor aggregates for each
func (s *Svc) PopularRepos(ctx context.Context, in domain.TopInput) ([]domain.PopularRepo, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	pairs := repostats.Popular(s.table, in.N, s.tieMode)
	urls := make([]string, len(pairs))
	for i, p := range pairs {
		urls[i] = p.Key
	}
	names := repostats.RepoNames(s.table, urls)

	out := make([]domain.PopularRepo, len(pairs))
	for i, p := range pairs {
		peak, contribs := repostats.WatchersContributors(s.table, p.Key)
		out[i] = domain.PopularRepo{
			Repo:         p.Key,
			Name:         names[i],
			Events:       p.Count,
			PeakWatchers: peak,
			Contributors: contribs,
		}
	}
	return out, nil
}

// WatchersContributors returns the aggregates for one repository
func (s *Svc) WatchersContributors(ctx context.Context, in domain.RepoInput) (domain.PopularRepo, error) {
	if err := bind.Struct(in); err != nil {
		return domain.PopularRepo{}, err
	}
	peak, contribs := repostats.WatchersContributors(s.table, in.Repo)
	names := repostats.RepoNames(s.table, []string{in.Repo})
	return domain.PopularRepo{
		Repo:         in.Repo,
		Name:         names[0],
		Events:       len(s.table.ForRepo(in.Repo)),
		PeakWatchers: peak,
		Contributors: contribs,
	}, nil
}

// RepoLocations ranks inferred repository-owner locations
func (s *Svc) RepoLocations(ctx context.Context, in domain.TopInput) ([]domain.LabelCount, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	return toLabelCounts(repostats.TopLocations(s.table, in.N, s.tieMode)), nil
}

// ActivityHistogram buckets all events by time of day
func (s *Svc) ActivityHistogram(ctx context.Context, in domain.ActivityInput) (domain.ActivityHistogram, error) {
	if err := bind.Struct(in); err != nil {
		return domain.ActivityHistogram{}, err
	}
	counts, err := timebucket.Counts(s.table.All(), in.Chunks)
	if err != nil {
		return domain.ActivityHistogram{}, err
	}
	return domain.ActivityHistogram{Labels: timebucket.Labels(in.Chunks), Counts: counts}, nil
}

// ActivityByType cross-tabulates buckets against every observed event type
func (s *Svc) ActivityByType(ctx context.Context, in domain.ActivityInput) (domain.ActivityByType, error) {
	if err := bind.Struct(in); err != nil {
		return domain.ActivityByType{}, err
	}
	buckets, err := timebucket.ByType(s.table.All(), in.Chunks, s.table.Types())
	if err != nil {
		return domain.ActivityByType{}, err
	}
	return domain.ActivityByType{
		Labels:  timebucket.Labels(in.Chunks),
		Types:   s.table.Types(),
		Buckets: buckets,
	}, nil
}

// ActivityCountrySplit partitions bucket activity into main country vs rest
func (s *Svc) ActivityCountrySplit(ctx context.Context, in domain.CountrySplitInput) (domain.ActivityCountrySplit, error) {
	if err := bind.Struct(in); err != nil {
		return domain.ActivityCountrySplit{}, err
	}
	splits, err := timebucket.CountrySplit(s.table.All(), in.Chunks, in.Country)
	if err != nil {
		return domain.ActivityCountrySplit{}, err
	}
	rows := make([]domain.CountrySplitRow, len(splits))
	for i, sp := range splits {
		rows[i] = domain.CountrySplitRow{Main: sp.Main, Other: sp.Other}
	}
	return domain.ActivityCountrySplit{
		Labels:  timebucket.Labels(in.Chunks),
		Country: in.Country,
		Buckets: rows,
	}, nil
}

// ActivityWeekdays returns the weekday x bucket matrix, Monday first
func (s *Svc) ActivityWeekdays(ctx context.Context, in domain.ActivityInput) (domain.WeekdayActivity, error) {
	if err := bind.Struct(in); err != nil {
		return domain.WeekdayActivity{}, err
	}
	matrix, err := timebucket.WeekdayMatrix(s.table.All(), in.Chunks)
	if err != nil {
		return domain.WeekdayActivity{}, err
	}
	return domain.WeekdayActivity{
		Labels:   timebucket.Labels(in.Chunks),
		Weekdays: weekdayNames,
		Matrix:   matrix,
	}, nil
}

// ResolutionDays returns the issue resolution samples for one repository
func (s *Svc) ResolutionDays(ctx context.Context, in domain.RepoInput) (domain.Resolution, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Resolution{}, err
	}
	return domain.Resolution{
		Repo: in.Repo,
		Days: issuetrack.ResolutionDays(s.table, in.Repo),
	}, nil
}

// SearchYears counts keyword-matching repositories per creation year
func (s *Svc) SearchYears(ctx context.Context, in domain.SearchInput) ([]domain.YearCount, error) {
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	ys := search.ReposByKeywordPerYear(s.table, in.Keyword)
	out := make([]domain.YearCount, len(ys))
	for i, y := range ys {
		out[i] = domain.YearCount{Year: y.Year, Count: y.Count}
	}
	return out, nil
}

// Report runs the full battery the presentation layer charts
func (s *Svc) Report(ctx context.Context, in domain.ReportInput) (domain.Report, error) {
	if err := bind.Struct(in); err != nil {
		return domain.Report{}, err
	}
	started := time.Now()

	top := domain.TopInput{N: in.Top}
	activity := domain.ActivityInput{Chunks: in.Chunks}

	langs, err := s.TopLanguages(ctx, top)
	if err != nil {
		return domain.Report{}, err
	}
	countriesTop, err := s.TopCountries(ctx, top)
	if err != nil {
		return domain.Report{}, err
	}
	countryLangs := make([]domain.CountryLanguages, 0, len(countriesTop))
	for _, c := range countriesTop {
		if c.Label == "" {
			continue
		}
		cl, err := s.CountryLanguages(ctx, domain.CountryLanguagesInput{Country: c.Label, N: in.Top})
		if err != nil {
			return domain.Report{}, err
		}
		countryLangs = append(countryLangs, cl)
	}
	popular, err := s.PopularRepos(ctx, top)
	if err != nil {
		return domain.Report{}, err
	}
	locations, err := s.RepoLocations(ctx, top)
	if err != nil {
		return domain.Report{}, err
	}
	hist, err := s.ActivityHistogram(ctx, activity)
	if err != nil {
		return domain.Report{}, err
	}
	byType, err := s.ActivityByType(ctx, activity)
	if err != nil {
		return domain.Report{}, err
	}
	weekdays, err := s.ActivityWeekdays(ctx, activity)
	if err != nil {
		return domain.Report{}, err
	}

	rep := domain.Report{
		SessionID:        s.id,
		GeneratedAt:      started.UTC().Format(time.RFC3339),
		Events:           s.table.Len(),
		TieMode:          s.tieMode.String(),
		TopLanguages:     langs,
		TopCountries:     countriesTop,
		CountryLanguages: countryLangs,
		PopularRepos:     popular,
		RepoLocations:    locations,
		Histogram:        hist,
		ByType:           byType,
		Weekdays:         weekdays,
	}

	if in.Country != "" {
		split, err := s.ActivityCountrySplit(ctx, domain.CountrySplitInput{Chunks: in.Chunks, Country: in.Country})
		if err != nil {
			return domain.Report{}, err
		}
		rep.CountrySplit = split
	}
	if in.Keyword != "" {
		years, err := s.SearchYears(ctx, domain.SearchInput{Keyword: in.Keyword})
		if err != nil {
			return domain.Report{}, err
		}
		rep.KeywordYears = years
	}

	rep.Resolutions = make([]domain.Resolution, 0, len(popular))
	for _, p := range popular {
		res, err := s.ResolutionDays(ctx, domain.RepoInput{Repo: p.Repo})
		if err != nil {
			return domain.Report{}, err
		}
		rep.Resolutions = append(rep.Resolutions, res)
	}

	s.log.Info().
		Dur("elapsed", time.Since(started)).
		Int("events", s.table.Len()).
		Msg("report built")
	return rep, nil
}

// selectors shared by the ranking calls

func language(e events.Event) string { return e.RepoLanguage }
func country(e events.Event) string  { return e.Country }

func toLabelCounts(pairs []rank.Pair) []domain.LabelCount {
	out := make([]domain.LabelCount, len(pairs))
	for i, p := range pairs {
		out[i] = domain.LabelCount{Label: p.Key, Count: p.Count}
	}
	return out
}
