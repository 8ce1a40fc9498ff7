package middlewares

import (
	"bytes"
	"io"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultProxyTimeout = 15 * time.Second

// hopHeaders are meaningful for one connection only and are not forwarded.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Bridge forwards page requests to the frontend origin at target. Cookies
// set by the middlewares before it travel back with the frontend response.
func (m *Middlewares) Bridge(target string) http.Handler {
	timeout := m.InternalConfig.App.FrontendProxyTimeout
	if timeout <= 0 {
		timeout = defaultProxyTimeout
	}
	client := &http.Client{
		Timeout:   timeout,
		Transport: &http.Transport{MaxIdleConnsPerHost: 100},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	target = strings.TrimSuffix(target, "/")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		fullURL := target + r.URL.Path
		if r.URL.RawQuery != "" {
			fullURL += "?" + r.URL.RawQuery
		}

		bodyBytes, _ := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
		if bodyBytes == nil {
			bodyBytes = []byte{}
		}

		req, err := http.NewRequestWithContext(r.Context(), r.Method, fullURL, bytes.NewReader(bodyBytes))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCreateHTTPRequest(err))
			return
		}
		req.Header = r.Header.Clone()
		for _, header := range hopHeaders {
			req.Header.Del(header)
		}
		req.Header.Set(constvars.HeaderXRequestID, requestID)
		req.Header.Set(constvars.HeaderXForwardedHost, r.Host)

		resp, err := client.Do(req)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSendHTTPRequest(err))
			return
		}
		defer resp.Body.Close()

		for k, v := range resp.Header {
			w.Header()[k] = append(w.Header()[k], v...)
		}
		for _, header := range hopHeaders {
			w.Header().Del(header)
		}
		w.WriteHeader(resp.StatusCode)

		if _, err := io.Copy(w, resp.Body); err != nil {
			m.Log.Warn("Middlewares.Bridge failed writing response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	})
}
