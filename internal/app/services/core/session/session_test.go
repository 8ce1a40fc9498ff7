package session

import (
	"context"
	"errors"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/app/services/shared/redis"
	"medicare-portal/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, signal models.SessionSignal) error {
	args := m.Called(ctx, signal)
	return args.Error(0)
}

type failingStorage struct{}

func (failingStorage) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("storage down")
}

func (failingStorage) Set(ctx context.Context, key, value string) error {
	return errors.New("storage down")
}

func (failingStorage) Delete(ctx context.Context, key string) error {
	return errors.New("storage down")
}

func setupStorage(t *testing.T, visitorID string) (*miniredis.Miniredis, *clientStorage) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	storage := NewClientStorage(redis.NewRedisRepository(client), visitorID).(*clientStorage)
	return server, storage
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestClientStorage_NamespacedByVisitor(t *testing.T) {
	server, storage := setupStorage(t, "visitor-1")
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, constvars.StorageKeyAccessToken, "tok"))

	raw, err := server.Get("client:visitor-1:accessToken")
	require.NoError(t, err)
	assert.Equal(t, `"tok"`, raw)
	assert.Equal(t, constvars.CookieAccessTokenMaxAge*time.Second, server.TTL("client:visitor-1:accessToken"))

	value, err := storage.Get(ctx, constvars.StorageKeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tok", value)

	require.NoError(t, storage.Delete(ctx, constvars.StorageKeyAccessToken))
	value, err = storage.Get(ctx, constvars.StorageKeyAccessToken)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestHTTPCookieJar_ReadsWrittenCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "old"})
	rec := httptest.NewRecorder()
	jar := NewHTTPCookieJar(rec, req)

	value, ok := jar.Cookie(constvars.CookieAccessToken)
	assert.True(t, ok)
	assert.Equal(t, "old", value)

	jar.SetCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "new"})
	value, ok = jar.Cookie(constvars.CookieAccessToken)
	assert.True(t, ok)
	assert.Equal(t, "new", value)

	jar.SetCookie(&http.Cookie{Name: constvars.CookieAccessToken, MaxAge: -1})
	_, ok = jar.Cookie(constvars.CookieAccessToken)
	assert.False(t, ok)
}

func TestTokenVault_SaveWritesStorageAndCookie(t *testing.T) {
	_, storage := setupStorage(t, "visitor-1")
	rec := httptest.NewRecorder()
	jar := NewHTTPCookieJar(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	vault := NewTokenVault(storage, jar, new(mockPublisher), "visitor-1", CookieOptions{Secure: true}, zap.NewNop())

	require.NoError(t, vault.Save(context.Background(), "tok"))

	stored, err := vault.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", stored)

	cookie := findCookie(t, rec, constvars.CookieAccessToken)
	require.NotNil(t, cookie)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.True(t, cookie.Secure)
}

func TestTokenVault_SaveAbortsBeforeCookieOnStorageFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	jar := NewHTTPCookieJar(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	vault := NewTokenVault(failingStorage{}, jar, new(mockPublisher), "visitor-1", CookieOptions{}, zap.NewNop())

	err := vault.Save(context.Background(), "tok")

	assert.Error(t, err)
	assert.Nil(t, findCookie(t, rec, constvars.CookieAccessToken))
}

func TestTokenVault_ClearExpiresCookieEvenWhenStorageFails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "tok"})
	rec := httptest.NewRecorder()
	jar := NewHTTPCookieJar(rec, req)
	vault := NewTokenVault(failingStorage{}, jar, new(mockPublisher), "visitor-1", CookieOptions{}, zap.NewNop())

	err := vault.Clear(context.Background())

	assert.Error(t, err)
	cookie := findCookie(t, rec, constvars.CookieAccessToken)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
	_, ok := vault.CookieToken()
	assert.False(t, ok)
}

func TestTokenVault_Reconcile(t *testing.T) {
	t.Run("storage token rewrites a stale cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "stale"})
		rec := httptest.NewRecorder()
		vault := NewTokenVault(failingStorage{}, NewHTTPCookieJar(rec, req), new(mockPublisher), "v", CookieOptions{}, zap.NewNop())

		vault.Reconcile(context.Background(), "fresh")

		cookie := findCookie(t, rec, constvars.CookieAccessToken)
		require.NotNil(t, cookie)
		assert.Equal(t, "fresh", cookie.Value)
	})

	t.Run("missing storage token expires the cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "orphan"})
		rec := httptest.NewRecorder()
		vault := NewTokenVault(failingStorage{}, NewHTTPCookieJar(rec, req), new(mockPublisher), "v", CookieOptions{}, zap.NewNop())

		vault.Reconcile(context.Background(), "")

		cookie := findCookie(t, rec, constvars.CookieAccessToken)
		require.NotNil(t, cookie)
		assert.True(t, cookie.MaxAge < 0)
	})

	t.Run("matching copies are left alone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "tok"})
		rec := httptest.NewRecorder()
		vault := NewTokenVault(failingStorage{}, NewHTTPCookieJar(rec, req), new(mockPublisher), "v", CookieOptions{}, zap.NewNop())

		vault.Reconcile(context.Background(), "tok")

		assert.Nil(t, findCookie(t, rec, constvars.CookieAccessToken))
	})
}

func TestTokenVault_SignalStampsAndPublishes(t *testing.T) {
	_, storage := setupStorage(t, "visitor-1")
	publisher := new(mockPublisher)
	now := time.UnixMilli(1700000000123)
	publisher.On("Publish", mock.Anything, models.SessionSignal{
		Signal:    constvars.SignalLogin,
		VisitorID: "visitor-1",
		Timestamp: now.UnixMilli(),
	}).Return(nil)

	jar := NewHTTPCookieJar(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	vault := NewTokenVault(storage, jar, publisher, "visitor-1", CookieOptions{}, zap.NewNop())
	vault.Now = func() time.Time { return now }

	vault.Signal(context.Background(), constvars.SignalLogin)

	value, err := storage.Get(context.Background(), constvars.StorageKeyLoginSignal)
	require.NoError(t, err)
	assert.Equal(t, "1700000000123", value)
	publisher.AssertExpectations(t)
}

func TestTokenVault_SignalSwallowsFailures(t *testing.T) {
	publisher := new(mockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	jar := NewHTTPCookieJar(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	vault := NewTokenVault(failingStorage{}, jar, publisher, "visitor-1", CookieOptions{}, zap.NewNop())

	assert.NotPanics(t, func() {
		vault.Signal(context.Background(), constvars.SignalLogout)
	})
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestUserStore_ApplyClaims(t *testing.T) {
	t.Run("doctor fills both projections", func(t *testing.T) {
		store := NewUserStore()
		store.ApplyClaims(&models.Claims{
			ID:             "d1",
			MemberType:     constvars.MemberTypeDoctor,
			DoctorNick:     "drwho",
			DoctorFullName: "Doctor Who",
			Specialization: "Cardiology",
		})

		assert.Equal(t, "d1", store.Doctor().ID)
		assert.Equal(t, "drwho", store.Member().MemberNick)
		assert.Equal(t, "Doctor Who", store.Member().MemberFullName)
	})

	t.Run("patient resets the doctor projection", func(t *testing.T) {
		store := NewUserStore()
		store.ApplyClaims(&models.Claims{ID: "d1", MemberType: constvars.MemberTypeDoctor})
		store.ApplyClaims(&models.Claims{ID: "m1", MemberType: constvars.MemberTypePatient, MemberNick: "alice"})

		assert.Equal(t, "alice", store.Member().MemberNick)
		assert.True(t, store.Doctor().IsEmpty())
	})

	t.Run("reset empties both and notifies subscribers", func(t *testing.T) {
		store := NewUserStore()
		store.ApplyClaims(&models.Claims{ID: "m1", MemberType: constvars.MemberTypePatient})

		var seen []models.Member
		unsubscribe := store.SubscribeMember(func(member models.Member) {
			seen = append(seen, member)
		})
		defer unsubscribe()

		store.Reset()

		assert.True(t, store.Member().IsEmpty())
		assert.True(t, store.Doctor().IsEmpty())
		require.Len(t, seen, 1)
		assert.True(t, seen[0].IsEmpty())
	})
}
