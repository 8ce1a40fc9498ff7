package middlewares

import (
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RouteGuard redirects page requests based on the role found in the
// accessToken cookie. The token is decoded without verifying its signature,
// so this only steers navigation; the upstream API authorizes every call.
func (m *Middlewares) RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, hasSession := "", false
		if cookie, err := r.Cookie(constvars.CookieAccessToken); err == nil && cookie.Value != "" {
			role, hasSession = m.JWTManager.PeekRole(cookie.Value)
		}

		target := guardTarget(r.URL.Path, role, hasSession)
		if target == "" {
			next.ServeHTTP(w, r)
			return
		}

		m.Log.Debug("Middlewares.RouteGuard redirecting",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingTargetKey, target),
		)
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
	})
}

// guardTarget returns where a page request should be redirected, or an
// empty string to let it through.
func guardTarget(path, role string, hasSession bool) string {
	switch {
	case underPath(path, constvars.LandingDoctor):
		return requireRole(role, hasSession, constvars.MemberTypeDoctor)
	case underPath(path, constvars.LandingAdmin):
		return requireRole(role, hasSession, constvars.MemberTypeAdmin)
	case underPath(path, "/auth") && hasSession:
		return models.LandingFor(role)
	}
	return ""
}

func requireRole(role string, hasSession bool, expected string) string {
	if !hasSession {
		return constvars.PathLogin
	}
	if role != expected {
		return models.LandingFor(role)
	}
	return ""
}

func underPath(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
