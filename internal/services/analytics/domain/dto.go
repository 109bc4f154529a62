// Package domain holds DTOs for analytics http and service contracts
package domain

// Inputs are validated at the service seam, so the CLI and the HTTP API
// share one set of rules

// TopInput asks for the top n entries of a ranking
type TopInput struct {
	N int `json:"n" validate:"required,min=1,max=100" example:"10"`
}

// CountryLanguagesInput asks for a country's top languages, fixed width
type CountryLanguagesInput struct {
	Country string `json:"country" validate:"required,min=1,max=100" example:"Germany"`
	N       int    `json:"n" validate:"required,min=1,max=100" example:"10"`
}

// ActivityInput selects the number of time-of-day buckets
type ActivityInput struct {
	Chunks int `json:"chunks" validate:"required,hourdiv" example:"4"`
}

// CountrySplitInput selects buckets plus the main country to split against
type CountrySplitInput struct {
	Chunks  int    `json:"chunks" validate:"required,hourdiv" example:"4"`
	Country string `json:"country" validate:"required,min=1,max=100" example:"United States"`
}

// RepoInput identifies one repository by its url
type RepoInput struct {
	Repo string `json:"repo" validate:"required,min=1,max=300" example:"https://github.com/golang/go"`
}

// SearchInput is a description keyword query
type SearchInput struct {
	Keyword string `json:"keyword" validate:"required,min=2,max=100" example:"security"`
}

// ReportInput configures the full analysis battery
type ReportInput struct {
	Top     int    `json:"top" validate:"required,min=1,max=100" example:"10"`
	Chunks  int    `json:"chunks" validate:"required,hourdiv" example:"4"`
	Keyword string `json:"keyword,omitempty" validate:"omitempty,min=2,max=100" example:"security"`
	Country string `json:"country,omitempty" validate:"omitempty,min=1,max=100" example:"United States"`
}

// Rows

// LabelCount is one ranked (label, count) row
type LabelCount struct {
	Label string `json:"label" example:"Go"`
	Count int    `json:"count" example:"42"`
}

// CountryLanguages is a country with its padded top-language slots
type CountryLanguages struct {
	Country   string       `json:"country" example:"Germany"`
	Languages []LabelCount `json:"languages"`
}

// PopularRepo is one repository ranked by raw event count
type PopularRepo struct {
	Repo         string `json:"repo" example:"https://github.com/golang/go"`
	Name         string `json:"name" example:"go"`
	Events       int    `json:"events" example:"512"`
	PeakWatchers int    `json:"peak_watchers" example:"2048"`
	Contributors int    `json:"contributors" example:"37"`
}

// ActivityHistogram is the per-bucket event totals with window labels
type ActivityHistogram struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// ActivityByType carries per-bucket counts with complete type coverage
type ActivityByType struct {
	Labels  []string         `json:"labels"`
	Types   []string         `json:"types"`
	Buckets []map[string]int `json:"buckets"`
}

// CountrySplitRow is one bucket's (main country, other countries) pair
type CountrySplitRow struct {
	Main  int `json:"main"`
	Other int `json:"other"`
}

// ActivityCountrySplit is the country-vs-rest view across buckets
type ActivityCountrySplit struct {
	Labels  []string          `json:"labels"`
	Country string            `json:"country"`
	Buckets []CountrySplitRow `json:"buckets"`
}

// WeekdayActivity is the weekday x bucket matrix, Monday first
type WeekdayActivity struct {
	Labels   []string `json:"labels"`
	Weekdays []string `json:"weekdays"`
	Matrix   [][]int  `json:"matrix"`
}

// Resolution is the issue resolution-time samples for one repository
type Resolution struct {
	Repo string `json:"repo" example:"https://github.com/golang/go"`
	Days []int  `json:"days"`
}

// YearCount is one (year, repository count) sample
type YearCount struct {
	Year  string `json:"year" example:"2019"`
	Count int    `json:"count" example:"2"`
}

// Report is the full analysis document the batch CLI prints and the API
// serves in one call. Shapes mirror what the presentation layer charts
type Report struct {
	SessionID        string               `json:"session_id"`
	GeneratedAt      string               `json:"generated_at"`
	Events           int                  `json:"events"`
	TieMode          string               `json:"tie_mode"`
	TopLanguages     []LabelCount         `json:"top_languages"`
	TopCountries     []LabelCount         `json:"top_countries"`
	CountryLanguages []CountryLanguages   `json:"country_languages"`
	PopularRepos     []PopularRepo        `json:"popular_repos"`
	RepoLocations    []LabelCount         `json:"repo_locations"`
	Histogram        ActivityHistogram    `json:"activity_histogram"`
	ByType           ActivityByType       `json:"activity_by_type"`
	Weekdays         WeekdayActivity      `json:"activity_weekdays"`
	CountrySplit     ActivityCountrySplit `json:"activity_country_split,omitempty"`
	KeywordYears     []YearCount          `json:"keyword_years,omitempty"`
	Resolutions      []Resolution         `json:"resolutions"`
}
