package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/delivery/http/controllers"
	"medicare-portal/internal/app/delivery/http/middlewares"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/dto/responses"
	"medicare-portal/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSessionUsecase struct {
	mock.Mock
	manager *MockSessionManager
}

func (m *MockSessionUsecase) ForVisitor(visitorID string, jar contracts.CookieJar, notifier contracts.Notifier, navigator contracts.Navigator) contracts.SessionManager {
	m.Called(visitorID)
	m.manager.notifier = notifier
	m.manager.navigator = navigator
	return m.manager
}

type MockSessionManager struct {
	mock.Mock
	notifier  contracts.Notifier
	navigator contracts.Navigator
	state     models.SessionState
}

func (m *MockSessionManager) LogIn(ctx context.Context, nick, password string) error {
	args := m.Called(ctx, nick, password)
	return args.Error(0)
}

func (m *MockSessionManager) SignUpMember(ctx context.Context, input *requests.SignupMember) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockSessionManager) SignUpDoctor(ctx context.Context, input *requests.SignupDoctor) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockSessionManager) ForgotPassword(ctx context.Context, nick, phone string) (bool, error) {
	args := m.Called(ctx, nick, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionManager) ResetPassword(ctx context.Context, input *requests.ResetPassword) (bool, error) {
	args := m.Called(ctx, input)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionManager) LogOut(ctx context.Context, shouldRedirect bool) {
	m.Called(ctx, shouldRedirect)
}

func (m *MockSessionManager) Restore(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionManager) UpdateProfile(ctx context.Context, input *requests.UpdateMember, avatar *requests.Avatar) error {
	args := m.Called(ctx, input, avatar)
	return args.Error(0)
}

func (m *MockSessionManager) State() models.SessionState {
	return m.state
}

func (m *MockSessionManager) Member() models.Member {
	return models.Member{}
}

func (m *MockSessionManager) Doctor() models.Doctor {
	return models.EmptyDoctor()
}

type sessionEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    responses.Session `json:"data"`
}

func passthrough(next http.Handler) http.Handler {
	return next
}

func setupAuthRouter(t *testing.T) (*chi.Mux, *MockSessionManager) {
	t.Helper()

	manager := &MockSessionManager{state: models.SessionState{Status: models.SessionAnonymous}}
	usecase := &MockSessionUsecase{manager: manager}
	usecase.On("ForVisitor", mock.Anything).Maybe()

	authController := &controllers.AuthController{
		Log:            zap.NewNop(),
		SessionUsecase: usecase,
		InternalConfig: &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 5}},
	}

	router := chi.NewRouter()
	attachAuthRoutes(router, passthrough, authController)
	return router, manager
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("Login with valid credentials", func(t *testing.T) {
		router, manager := setupAuthRouter(t)
		manager.On("LogIn", mock.Anything, "alice", "secret1").Run(func(args mock.Arguments) {
			manager.state = models.SessionState{Status: models.SessionAuthenticated, Role: constvars.MemberTypePatient}
			manager.navigator.Navigate("/")
		}).Return(nil)

		rr := postJSON(t, router, "/login", requests.Login{Nick: " alice ", Password: "secret1"})

		assert.Equal(t, http.StatusOK, rr.Code)
		var envelope sessionEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.LoginSuccess, envelope.Message)
		assert.Equal(t, models.SessionAuthenticated, envelope.Data.State.Status)
		require.NotNil(t, envelope.Data.Navigation)
		assert.Equal(t, "/", envelope.Data.Navigation.Target)
		manager.AssertExpectations(t)
	})

	t.Run("Login with malformed body", func(t *testing.T) {
		router, manager := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		manager.AssertNotCalled(t, "LogIn")
	})

	t.Run("Login without password", func(t *testing.T) {
		router, manager := setupAuthRouter(t)

		rr := postJSON(t, router, "/login", requests.Login{Nick: "alice"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		manager.AssertNotCalled(t, "LogIn")
	})

	t.Run("Login rejected returns the notification", func(t *testing.T) {
		router, manager := setupAuthRouter(t)
		manager.On("LogIn", mock.Anything, "alice", "wrong1").Run(func(args mock.Arguments) {
			manager.notifier.Notify(models.Notification{
				Kind:    models.NotificationError,
				Message: constvars.NotifyCheckPassword,
			})
		}).Return(exceptions.ErrAuthFailed(errors.New("invalid password"), exceptions.AuthFailureCredentialMismatch, constvars.NotifyCheckPassword))

		rr := postJSON(t, router, "/login", requests.Login{Nick: "alice", Password: "wrong1"})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var envelope responses.ErrorResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		require.Len(t, envelope.Notifications, 1)
		assert.Equal(t, constvars.NotifyCheckPassword, envelope.Notifications[0].Message)
	})
}

func TestAuthRouter_ForgotPassword(t *testing.T) {
	t.Run("verified member is sent to the reset page", func(t *testing.T) {
		router, manager := setupAuthRouter(t)
		manager.On("ForgotPassword", mock.Anything, "alice", "+15551234").Return(true, nil)

		rr := postJSON(t, router, "/forgot-password", requests.ForgotPassword{MemberNick: "alice", MemberPhone: "+15551234"})

		assert.Equal(t, http.StatusOK, rr.Code)
		var envelope struct {
			Message string                   `json:"message"`
			Data    responses.ForgotPassword `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.Equal(t, constvars.ForgotPasswordVerified, envelope.Message)
		assert.True(t, envelope.Data.Verified)
		require.NotNil(t, envelope.Data.Navigation)
		assert.Equal(t, "/auth/reset-password?memberNick=alice&memberPhone=%2B15551234", envelope.Data.Navigation.Target)
	})

	t.Run("unverified member stays on the page", func(t *testing.T) {
		router, manager := setupAuthRouter(t)
		manager.On("ForgotPassword", mock.Anything, "alice", "+15551234").Return(false, nil)

		rr := postJSON(t, router, "/forgot-password", requests.ForgotPassword{MemberNick: "alice", MemberPhone: "+15551234"})

		assert.Equal(t, http.StatusOK, rr.Code)
		var envelope struct {
			Message string                   `json:"message"`
			Data    responses.ForgotPassword `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.Equal(t, constvars.ForgotPasswordRejected, envelope.Message)
		assert.False(t, envelope.Data.Verified)
		assert.Nil(t, envelope.Data.Navigation)
	})
}

func TestAuthRouter_Logout(t *testing.T) {
	t.Run("redirects by default", func(t *testing.T) {
		router, manager := setupAuthRouter(t)
		manager.On("LogOut", mock.Anything, true).Return()

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		manager.AssertExpectations(t)
	})

	t.Run("redirect can be turned off", func(t *testing.T) {
		router, manager := setupAuthRouter(t)
		manager.On("LogOut", mock.Anything, false).Return()

		req := httptest.NewRequest(http.MethodPost, "/logout?redirect=false", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		manager.AssertExpectations(t)
	})
}

func TestAuthRouter_Me(t *testing.T) {
	router, manager := setupAuthRouter(t)
	manager.On("Restore", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var envelope sessionEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, constvars.SessionGetSuccess, envelope.Message)
	assert.Equal(t, models.SessionAnonymous, envelope.Data.State.Status)
}

func TestAuthRouter_RateLimited(t *testing.T) {
	internalConfig := &config.InternalConfig{App: config.App{
		RequestTimeoutInSeconds:     5,
		AuthRateLimitPerSecond:      0.001,
		AuthRateLimitBurst:          1,
		AuthRateLimitBlockInSeconds: 60,
	}}
	logger := zap.NewNop()

	manager := &MockSessionManager{}
	usecase := &MockSessionUsecase{manager: manager}
	usecase.On("ForVisitor", mock.Anything).Maybe()
	manager.On("LogIn", mock.Anything, "alice", "secret1").Return(nil).Once()

	authController := &controllers.AuthController{Log: logger, SessionUsecase: usecase, InternalConfig: internalConfig}
	middlewareInstance := &middlewares.Middlewares{Log: logger, InternalConfig: internalConfig}

	router := chi.NewRouter()
	attachAuthRoutes(router, newAuthLimiter(internalConfig, middlewareInstance), authController)

	first := postJSON(t, router, "/login", requests.Login{Nick: "alice", Password: "secret1"})
	second := postJSON(t, router, "/login", requests.Login{Nick: "alice", Password: "secret1"})

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get(constvars.HeaderRetryAfter))
	manager.AssertNumberOfCalls(t, "LogIn", 1)
}
