package contracts

import (
	"context"
	"medicare-portal/internal/app/models"
	"net/http"
)

// ClientStorage is the durable key-value store of one browser.
type ClientStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CookieJar reads request cookies and writes response cookies.
type CookieJar interface {
	Cookie(name string) (string, bool)
	SetCookie(cookie *http.Cookie)
}

type SignalPublisher interface {
	Publish(ctx context.Context, signal models.SessionSignal) error
}

type JWTManager interface {
	DecodeClaims(ctx context.Context, token string) (*models.Claims, error)
	PeekRole(token string) (string, bool)
}
