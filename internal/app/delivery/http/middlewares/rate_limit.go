package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit limits every client IP across the whole service.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
}
