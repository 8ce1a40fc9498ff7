package middlewares

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
)

// BodyBuffer reads the request body, stores the raw bytes in the context and
// replaces the request body so it can be read again by the bridge. Bodies over
// the configured limit are rejected with 413.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
		if limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(err, tooLarge.Limit))
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadBody(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_RAW_BODY, bodyBytes)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
