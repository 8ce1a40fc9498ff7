package session

import (
	"context"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type CookieOptions struct {
	Secure bool
	Domain string
}

// TokenVault keeps the durable storage copy of the access token and the
// accessToken cookie in lockstep.
type TokenVault struct {
	Storage   contracts.ClientStorage
	Jar       contracts.CookieJar
	Publisher contracts.SignalPublisher
	VisitorID string
	Cookie    CookieOptions
	Log       *zap.Logger
	Now       func() time.Time
}

func NewTokenVault(storage contracts.ClientStorage, jar contracts.CookieJar, publisher contracts.SignalPublisher, visitorID string, cookie CookieOptions, logger *zap.Logger) *TokenVault {
	return &TokenVault{
		Storage:   storage,
		Jar:       jar,
		Publisher: publisher,
		VisitorID: visitorID,
		Cookie:    cookie,
		Log:       logger,
		Now:       time.Now,
	}
}

// Save writes storage first. The cookie is only written once storage holds the token.
func (v *TokenVault) Save(ctx context.Context, token string) error {
	requestID := utils.GetRequestID(ctx)
	v.Log.Debug("TokenVault.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitorIDKey, v.VisitorID),
	)

	err := v.Storage.Set(ctx, constvars.StorageKeyAccessToken, token)
	if err != nil {
		v.Log.Error("TokenVault.Save error writing client storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	v.Jar.SetCookie(v.accessTokenCookie(token, constvars.CookieAccessTokenMaxAge))
	return nil
}

// Clear always expires the cookie, even when storage cannot be reached.
func (v *TokenVault) Clear(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	v.Log.Debug("TokenVault.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitorIDKey, v.VisitorID),
	)

	err := v.Storage.Delete(ctx, constvars.StorageKeyAccessToken)
	if err != nil {
		v.Log.Error("TokenVault.Clear error deleting client storage",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	v.Jar.SetCookie(v.accessTokenCookie("", -1))
	return err
}

func (v *TokenVault) Load(ctx context.Context) (string, error) {
	return v.Storage.Get(ctx, constvars.StorageKeyAccessToken)
}

// CookieToken returns the token the browser sent in the accessToken cookie.
func (v *TokenVault) CookieToken() (string, bool) {
	return v.Jar.Cookie(constvars.CookieAccessToken)
}

// Reconcile rewrites the cookie from storage so both copies agree. Storage is
// the source of truth: a missing storage token expires the cookie.
func (v *TokenVault) Reconcile(ctx context.Context, storedToken string) {
	cookieToken, hasCookie := v.CookieToken()
	switch {
	case storedToken == "" && hasCookie:
		v.Jar.SetCookie(v.accessTokenCookie("", -1))
	case storedToken != "" && cookieToken != storedToken:
		v.Jar.SetCookie(v.accessTokenCookie(storedToken, constvars.CookieAccessTokenMaxAge))
	}
}

// Signal stamps the login or logout key with the current Unix millisecond
// time and announces it on the broker. Failures are logged only.
func (v *TokenVault) Signal(ctx context.Context, name string) {
	requestID := utils.GetRequestID(ctx)
	timestamp := v.Now().UnixMilli()

	err := v.Storage.Set(ctx, name, strconv.FormatInt(timestamp, 10))
	if err != nil {
		v.Log.Warn("TokenVault.Signal error writing signal key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSignalKey, name),
			zap.Error(err),
		)
	}

	err = v.Publisher.Publish(ctx, models.SessionSignal{
		Signal:    name,
		VisitorID: v.VisitorID,
		Timestamp: timestamp,
	})
	if err != nil {
		v.Log.Warn("TokenVault.Signal error publishing signal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSignalKey, name),
			zap.Error(err),
		)
	}
}

func (v *TokenVault) accessTokenCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constvars.CookieAccessToken,
		Value:    value,
		Path:     "/",
		Domain:   v.Cookie.Domain,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   v.Cookie.Secure,
	}
}
