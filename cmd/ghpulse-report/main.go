// ghpulse-report loads an event snapshot, runs the full analytics battery,
// and prints the report as JSON on stdout
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"ghpulse/internal/adapters/countries"
	"ghpulse/internal/adapters/load"
	"ghpulse/internal/core/events"
	"ghpulse/internal/core/rank"
	"ghpulse/internal/platform/logger"
	"ghpulse/internal/services/analytics/domain"
	"ghpulse/internal/services/analytics/service"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var (
		eventsPath    = flag.String("events", "", "path to an events file or directory (required)")
		formatName    = flag.String("format", "csv", "snapshot format: csv or ndjson")
		countriesPath = flag.String("countries", "", "optional location-to-country CSV")
		top           = flag.Int("top", 10, "rows per ranking")
		chunks        = flag.Int("chunks", 4, "day divisions for activity buckets; must divide 24")
		keyword       = flag.String("keyword", "", "optional repository keyword search")
		country       = flag.String("country", "", "optional country for the activity split")
		keepTies      = flag.Bool("keep-ties", false, "include every row tied with the cutoff")
	)
	flag.Parse()

	l := logger.Get()
	if *eventsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	format, err := load.ParseFormat(*formatName)
	if err != nil {
		l.Fatal().Err(err).Msg("bad -format")
	}

	started := time.Now()
	evs, err := load.Events(*eventsPath, format)
	if err != nil {
		l.Fatal().Err(err).Msg("loading events failed")
	}
	if *countriesPath != "" {
		lookup, err := countries.FromCSV(*countriesPath)
		if err != nil {
			l.Fatal().Err(err).Msg("loading country lookup failed")
		}
		events.Enrich(evs, lookup)
	}

	table := events.NewTable(evs)
	l.Info().
		Int("events", table.Len()).
		Dur("elapsed", time.Since(started)).
		Msg("snapshot loaded")

	tieMode := rank.StrictTopN
	if *keepTies {
		tieMode = rank.KeepTies
	}
	svc := service.New(table, service.Options{TieMode: tieMode})

	rep, err := svc.Report(context.Background(), domain.ReportInput{
		Top:     *top,
		Chunks:  *chunks,
		Keyword: *keyword,
		Country: *country,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("report failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		l.Fatal().Err(err).Msg("encoding report failed")
	}
}
