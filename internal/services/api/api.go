// Package api assembles the HTTP surface: middleware stack, meta endpoints,
// metrics scrape, and the versioned analytics routes
package api

import (
	"net/http"
	"time"

	"ghpulse/internal/core/version"
	"ghpulse/internal/platform/config"
	"ghpulse/internal/platform/logger"
	"ghpulse/internal/platform/metrics"
	phttp "ghpulse/internal/platform/net/http"
	"ghpulse/internal/platform/net/middleware"
	"ghpulse/internal/services/analytics/domain"
	anhttp "ghpulse/internal/services/analytics/http"
)

// Options are the API options
type Options struct {
	Config    config.Conf
	Logger    *logger.Logger
	Analytics domain.ServicePort
	Metrics   *metrics.Set
	StartedAt time.Time
	Events    int
	SessionID string
}

// Mount mounts the API onto the given router
func Mount(r phttp.Router, opt Options) {
	mw := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Session(opt.SessionID),
		middleware.RecoverJSON,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: opt.Config.MayDuration("SLOW", 2*time.Second),
		}),
		middleware.CORS(middleware.CORSOptions{}),
	}
	if opt.Metrics != nil {
		mw = append(mw, opt.Metrics.Middleware)
	}
	r.Use(mw...)

	m := &meta{opt: opt}
	phttp.Get(r, "/health", m.health)
	phttp.Get(r, "/version", m.version)

	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	r.Route("/v1", func(v1 phttp.Router) {
		anhttp.Register(v1, opt.Analytics)
	})
}

type meta struct {
	opt Options
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK        bool   `json:"ok" example:"true"`
	Service   string `json:"service" example:"ghpulse-api"`
	SessionID string `json:"session_id"`
	Events    int    `json:"events" example:"120000"`
	Started   string `json:"started" example:"2026-08-28T13:00:00Z"`
	Now       string `json:"now" example:"2026-08-28T13:05:00Z"`
}

func (m *meta) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:        true,
		Service:   "ghpulse-api",
		SessionID: m.opt.SessionID,
		Events:    m.opt.Events,
		Started:   m.opt.StartedAt.UTC().Format(time.RFC3339),
		Now:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (m *meta) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
