package middlewares

import (
	"io"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/app/services/shared/jwtmanager"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	logger := zap.NewNop()
	return NewMiddlewares(logger, jwtmanager.NewJWTManager(logger), &config.InternalConfig{
		App:     config.App{RequestBodyLimitInMegabyte: 1},
		Session: config.AppSession{CookieDomain: "", CookieSecure: false},
	})
}

func signRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{ID: "user-1", MemberType: role}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestGuardTarget(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		role       string
		hasSession bool
		expected   string
	}{
		{"anonymous on doctor page", "/doctor/schedule", "", false, constvars.PathLogin},
		{"patient on doctor page", "/doctor", constvars.MemberTypePatient, true, constvars.LandingHome},
		{"doctor on doctor page", "/doctor/schedule", constvars.MemberTypeDoctor, true, ""},
		{"doctor on admin page", "/admin", constvars.MemberTypeDoctor, true, constvars.LandingDoctor},
		{"admin on admin page", "/admin/users", constvars.MemberTypeAdmin, true, ""},
		{"signed in on login page", "/auth/login", constvars.MemberTypeAdmin, true, constvars.LandingAdmin},
		{"anonymous on login page", "/auth/login", "", false, ""},
		{"anonymous on doctor search", "/doctors", "", false, ""},
		{"home", "/", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, guardTarget(tt.path, tt.role, tt.hasSession))
		})
	}
}

func TestRouteGuard(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.RouteGuard(http.HandlerFunc(okHandler))

	t.Run("redirects anonymous visitors to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/doctor", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
		assert.Equal(t, constvars.PathLogin, rr.Header().Get("Location"))
	})

	t.Run("lets a doctor through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/doctor", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: signRole(t, constvars.MemberTypeDoctor)})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("treats an unreadable cookie as no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "garbage"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2, time.Minute, zap.NewNop())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(http.HandlerFunc(okHandler))

	call := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001").Code)

	blocked := call("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "61", blocked.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000").Code, "other clients are not affected")

	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1003").Code, "still blocked")

	now = now.Add(31 * time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1004").Code, "block expired and tokens refilled")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(1, 1, time.Minute, zap.NewNop())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(http.HandlerFunc(okHandler))

	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.3:1000"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.3:1001"))
	require.Len(t, limiter.limiters, 2)
	require.Len(t, limiter.blocked, 1)

	now = now.Add(limiter.idleTTL + time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"))

	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "10.0.0.2")
	assert.Empty(t, limiter.blocked)
}

func TestVisitorID(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.VisitorID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetVisitorID(r.Context())
	}))

	t.Run("issues a cookie to new visitors", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, constvars.CookieVisitorID, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, cookies[0].Value, seen)
		assert.NotEmpty(t, seen)
	})

	t.Run("keeps an existing visitor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieVisitorID, Value: "visitor-42"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Empty(t, rr.Result().Cookies())
		assert.Equal(t, "visitor-42", seen)
	})
}

func TestBridge(t *testing.T) {
	var received struct {
		path, query, body, requestID, connection string
	}
	frontend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received.path = r.URL.Path
		received.query = r.URL.RawQuery
		received.body = string(body)
		received.requestID = r.Header.Get(constvars.HeaderXRequestID)
		received.connection = r.Header.Get("Keep-Alive")
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("<html>page</html>"))
	}))
	defer frontend.Close()

	m := newTestMiddlewares()
	handler := m.RequestIDMiddleware(m.BodyBuffer(m.Bridge(frontend.URL + "/")))

	req := httptest.NewRequest(http.MethodPost, "/doctors?input=abc", strings.NewReader("form=1"))
	req.Header.Set(constvars.HeaderXRequestID, "req-1")
	req.Header.Set("Keep-Alive", "timeout=5")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "<html>page</html>", rr.Body.String())
	assert.Equal(t, "text/html", rr.Header().Get("Content-Type"))
	assert.Equal(t, "/doctors", received.path)
	assert.Equal(t, "input=abc", received.query)
	assert.Equal(t, "form=1", received.body)
	assert.Equal(t, "req-1", received.requestID)
	assert.Empty(t, received.connection)
}

func TestBridge_FrontendDown(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Bridge("http://127.0.0.1:1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestBodyBuffer_RejectsOversizedBody(t *testing.T) {
	called := false
	m := newTestMiddlewares()
	handler := m.BodyBuffer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	body := strings.Repeat("a", 1<<20+10)
	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.False(t, called, "oversized bodies must not reach the bridge")
}

func TestBodyBuffer_KeepsBodyAtLimit(t *testing.T) {
	var received int
	m := newTestMiddlewares()
	handler := m.BodyBuffer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = len(body)
	}))

	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(strings.Repeat("a", 1<<20)))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1<<20, received)
}
