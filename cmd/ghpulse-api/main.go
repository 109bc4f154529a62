package main

import (
	"context"
	"time"

	"ghpulse/internal/adapters/countries"
	"ghpulse/internal/adapters/load"
	"ghpulse/internal/core/events"
	"ghpulse/internal/core/rank"
	"ghpulse/internal/platform/config"
	"ghpulse/internal/platform/logger"
	"ghpulse/internal/platform/metrics"
	phttp "ghpulse/internal/platform/net/http"
	"ghpulse/internal/services/analytics/service"
	"ghpulse/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("API_")
	dataCfg := root.Prefix("EVENTS_")
	l := logger.Get()

	format, err := load.ParseFormat(dataCfg.MayString("FORMAT", "csv"))
	if err != nil {
		l.Panic().Err(err).Msg("bad EVENTS_FORMAT")
	}

	started := time.Now()
	evs, err := load.Events(dataCfg.MustString("PATH"), format)
	if err != nil {
		l.Panic().Err(err).Msg("loading events failed")
	}

	if p := dataCfg.MayString("COUNTRIES", ""); p != "" {
		lookup, err := countries.FromCSV(p)
		if err != nil {
			l.Panic().Err(err).Msg("loading country lookup failed")
		}
		events.Enrich(evs, lookup)
	} else {
		l.Warn().Msg("EVENTS_COUNTRIES unset; country aggregates will be empty")
	}

	table := events.NewTable(evs)
	l.Info().
		Int("events", table.Len()).
		Dur("elapsed", time.Since(started)).
		Msg("snapshot loaded")

	tieMode := rank.StrictTopN
	if apiCfg.MayBool("KEEP_TIES", false) {
		tieMode = rank.KeepTies
	}
	svc := service.New(table, service.Options{TieMode: tieMode})

	mset := metrics.New("ghpulse")

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config:    apiCfg,
		Logger:    l,
		Analytics: svc,
		Metrics:   mset,
		StartedAt: started,
		Events:    table.Len(),
		SessionID: svc.SessionID(),
	})

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
