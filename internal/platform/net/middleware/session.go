package middleware

import (
	"net/http"

	"ghpulse/internal/platform/logger"
	pnet "ghpulse/internal/platform/net"
)

// Session stamps the analysis session id into the request context so
// downstream log lines carry it. Must run after RequestID
func Session(sessionID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if sessionID == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pnet.WithRequest(r.Context(), "", sessionID)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
