package domain

import "context"

// ServicePort is consumed by handlers and the batch CLI
type ServicePort interface {
	TopLanguages(ctx context.Context, in TopInput) ([]LabelCount, error)
	TopCountries(ctx context.Context, in TopInput) ([]LabelCount, error)
	CountryLanguages(ctx context.Context, in CountryLanguagesInput) (CountryLanguages, error)

	PopularRepos(ctx context.Context, in TopInput) ([]PopularRepo, error)
	WatchersContributors(ctx context.Context, in RepoInput) (PopularRepo, error)
	RepoLocations(ctx context.Context, in TopInput) ([]LabelCount, error)

	ActivityHistogram(ctx context.Context, in ActivityInput) (ActivityHistogram, error)
	ActivityByType(ctx context.Context, in ActivityInput) (ActivityByType, error)
	ActivityCountrySplit(ctx context.Context, in CountrySplitInput) (ActivityCountrySplit, error)
	ActivityWeekdays(ctx context.Context, in ActivityInput) (WeekdayActivity, error)

	ResolutionDays(ctx context.Context, in RepoInput) (Resolution, error)
	SearchYears(ctx context.Context, in SearchInput) ([]YearCount, error)

	Report(ctx context.Context, in ReportInput) (Report, error)
}
