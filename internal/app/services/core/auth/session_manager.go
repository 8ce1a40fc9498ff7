package auth

import (
	"context"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/app/services/core/session"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// sessionManager owns the token lifecycle of one visitor: acquire, persist,
// decode into the user projections, and revoke.
type sessionManager struct {
	AuthAPI        contracts.AuthAPI
	MemberAPI      contracts.MemberAPI
	JWTManager     contracts.JWTManager
	LockerService  contracts.LockerService
	MinioStorage   contracts.Storage
	Vault          *session.TokenVault
	Users          *session.UserStore
	Notifier       contracts.Notifier
	Navigator      contracts.Navigator
	VisitorID      string
	LockTTL        time.Duration
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	mu    sync.RWMutex
	state models.SessionState
}

// LogIn tries the member identity first and falls back to the doctor
// identity only when the member does not exist.
func (m *sessionManager) LogIn(ctx context.Context, nick, password string) error {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("sessionManager.LogIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberNickKey, nick),
	)

	return m.inFlight(ctx, constvars.OperationLogin, func() error {
		m.setState(models.SessionState{Status: models.SessionAuthenticating, Audience: models.AudienceMember})
		payload, err := m.AuthAPI.LoginMember(ctx, nick, password)
		if err != nil && exceptions.ClassifyAuthFailure(err) == exceptions.AuthFailureMemberNotFound {
			m.Log.Info("sessionManager.LogIn member not found, trying doctor",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMemberNickKey, nick),
			)
			m.setState(models.SessionState{Status: models.SessionAuthenticating, Audience: models.AudienceDoctor})
			payload, err = m.AuthAPI.LoginDoctor(ctx, nick, password)
		}
		if err != nil {
			return m.failAuthentication(ctx, "LogIn", err, false)
		}

		return m.establish(ctx, "LogIn", payload, "")
	})
}

func (m *sessionManager) SignUpMember(ctx context.Context, input *requests.SignupMember) error {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("sessionManager.SignUpMember called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberNickKey, input.MemberNick),
	)

	return m.inFlight(ctx, constvars.OperationSignupMember, func() error {
		m.setState(models.SessionState{Status: models.SessionAuthenticating, Audience: models.AudienceMember})
		payload, err := m.AuthAPI.SignupMember(ctx, input)
		if err != nil {
			return m.failAuthentication(ctx, "SignUpMember", err, false)
		}
		return m.establish(ctx, "SignUpMember", payload, "")
	})
}

// SignUpDoctor announces the new account before navigating; member signup
// does not.
func (m *sessionManager) SignUpDoctor(ctx context.Context, input *requests.SignupDoctor) error {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("sessionManager.SignUpDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberNickKey, input.DoctorNick),
	)

	return m.inFlight(ctx, constvars.OperationSignupDoctor, func() error {
		m.setState(models.SessionState{Status: models.SessionAuthenticating, Audience: models.AudienceDoctor})
		payload, err := m.AuthAPI.SignupDoctor(ctx, input)
		if err != nil {
			return m.failAuthentication(ctx, "SignUpDoctor", err, true)
		}
		return m.establish(ctx, "SignUpDoctor", payload, constvars.NotifyDoctorSignupSuccess)
	})
}

// ForgotPassword reports whether nick and phone belong to one member. Upstream
// failures are notified and read as not verified; the error return is only
// set when the operation could not start.
func (m *sessionManager) ForgotPassword(ctx context.Context, nick, phone string) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("sessionManager.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberNickKey, nick),
	)

	var verified bool
	err := m.inFlight(ctx, constvars.OperationForgotPassword, func() error {
		ok, err := m.AuthAPI.ForgotPassword(ctx, nick, phone)
		if err != nil {
			m.Log.Error("sessionManager.ForgotPassword error calling upstream",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			m.notifyError(exceptions.AuthFailureMessage(exceptions.ClassifyAuthFailure(err), false))
			return nil
		}
		if !ok {
			m.notifyError(constvars.NotifyMemberNotVerified)
			return nil
		}
		verified = true
		return nil
	})
	if err != nil {
		return false, err
	}

	m.Log.Info("sessionManager.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, verified),
	)
	return verified, nil
}

// ResetPassword never authenticates the caller. On success the user is sent
// to the login page.
func (m *sessionManager) ResetPassword(ctx context.Context, input *requests.ResetPassword) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("sessionManager.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberNickKey, input.MemberNick),
	)

	var reset bool
	err := m.inFlight(ctx, constvars.OperationResetPassword, func() error {
		ok, err := m.AuthAPI.ResetPassword(ctx, input)
		if err != nil {
			m.Log.Error("sessionManager.ResetPassword error calling upstream",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			m.notifyError(exceptions.AuthFailureMessage(exceptions.ClassifyAuthFailure(err), false))
			return nil
		}
		if !ok {
			m.notifyError(constvars.NotifyGenericFailure)
			return nil
		}
		reset = true
		m.Notifier.Notify(models.Notification{
			Kind:    models.NotificationSuccess,
			Title:   constvars.NotifyTitleSuccess,
			Message: constvars.NotifyPasswordResetSuccess,
		})
		m.Navigator.Navigate(constvars.PathLogin)
		return nil
	})
	if err != nil {
		return false, err
	}

	m.Log.Info("sessionManager.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, reset),
	)
	return reset, nil
}

// LogOut is safe to call without a session.
func (m *sessionManager) LogOut(ctx context.Context, shouldRedirect bool) {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("sessionManager.LogOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitorIDKey, m.VisitorID),
	)

	m.teardown(ctx)
	m.Vault.Signal(ctx, constvars.SignalLogout)

	if shouldRedirect {
		m.Navigator.Navigate(constvars.LandingHome)
	}

	m.Log.Info("sessionManager.LogOut succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}

// Restore hydrates the projections from durable storage and brings the
// cookie in line with it. A token that cannot be decoded ends the session.
func (m *sessionManager) Restore(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	m.Log.Debug("sessionManager.Restore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitorIDKey, m.VisitorID),
	)

	token, err := m.Vault.Load(ctx)
	if err != nil {
		m.Log.Error("sessionManager.Restore error loading token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if token == "" {
		m.Users.Reset()
		m.setState(models.SessionState{Status: models.SessionAnonymous})
		m.Vault.Reconcile(ctx, "")
		return nil
	}

	claims, err := m.JWTManager.DecodeClaims(ctx, token)
	if err != nil {
		m.Log.Warn("sessionManager.Restore stored token cannot be decoded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		m.teardown(ctx)
		return nil
	}

	m.apply(claims)
	m.Vault.Reconcile(ctx, token)

	m.Log.Debug("sessionManager.Restore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberTypeKey, claims.MemberType),
	)
	return nil
}

// UpdateProfile sends profile edits with the stored token and re-applies the
// token the API returns through the same path as login.
func (m *sessionManager) UpdateProfile(ctx context.Context, input *requests.UpdateMember, avatar *requests.Avatar) error {
	requestID := utils.GetRequestID(ctx)
	m.Log.Info("sessionManager.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitorIDKey, m.VisitorID),
	)

	return m.inFlight(ctx, constvars.OperationUpdateProfile, func() error {
		token, err := m.Vault.Load(ctx)
		if err != nil {
			m.notifyError(constvars.NotifyGenericFailure)
			return err
		}
		if token == "" {
			m.notifyError(constvars.ErrClientNotLoggedIn)
			return exceptions.ErrNotAuthenticated(nil)
		}

		claims, err := m.JWTManager.DecodeClaims(ctx, token)
		if err != nil {
			m.teardown(ctx)
			m.notifyError(constvars.ErrClientNotLoggedIn)
			return err
		}
		input.ID = claims.ID

		if avatar != nil {
			objectName := utils.GenerateFileName(m.InternalConfig.Minio.AvatarPrefix, claims.ID, avatar.FileName)
			imageURL, err := m.MinioStorage.UploadAvatar(ctx, avatar, m.InternalConfig.Minio.BucketName, objectName)
			if err != nil {
				m.Log.Error("sessionManager.UpdateProfile error uploading avatar",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				m.notifyError(constvars.NotifyGenericFailure)
				return err
			}
			input.MemberImage = imageURL
		}

		payload, err := m.MemberAPI.UpdateMember(ctx, token, input)
		if err != nil {
			failure := exceptions.ClassifyAuthFailure(err)
			message := exceptions.AuthFailureMessage(failure, false)
			m.Log.Error("sessionManager.UpdateProfile error calling upstream",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFailureKey, failure.String()),
				zap.Error(err),
			)
			m.notifyError(message)
			return exceptions.ErrAuthFailed(err, failure, message)
		}

		claims, err = m.persist(ctx, payload)
		if err != nil {
			m.Log.Error("sessionManager.UpdateProfile error persisting token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			m.notifyError(constvars.NotifyGenericFailure)
			return err
		}
		m.apply(claims)

		m.Notifier.Notify(models.Notification{
			Kind:    models.NotificationSuccess,
			Title:   constvars.NotifyTitleSuccess,
			Message: constvars.NotifyProfileUpdatedSuccess,
		})

		m.Log.Info("sessionManager.UpdateProfile succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMemberIDKey, claims.ID),
		)
		return nil
	})
}

func (m *sessionManager) State() models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *sessionManager) Member() models.Member {
	return m.Users.Member()
}

func (m *sessionManager) Doctor() models.Doctor {
	return m.Users.Doctor()
}

// establish persists a freshly issued token, projects its claims, signals the
// login and navigates to the landing area of the role.
func (m *sessionManager) establish(ctx context.Context, method string, payload *models.AuthPayload, successMessage string) error {
	requestID := utils.GetRequestID(ctx)

	claims, err := m.persist(ctx, payload)
	if err != nil {
		return m.failAuthentication(ctx, method, err, false)
	}
	m.apply(claims)
	m.Vault.Signal(ctx, constvars.SignalLogin)

	if successMessage != "" {
		m.Notifier.Notify(models.Notification{
			Kind:    models.NotificationSuccess,
			Title:   constvars.NotifyTitleSuccess,
			Message: successMessage,
		})
	}
	m.Navigator.Navigate(models.LandingFor(claims.MemberType))

	m.Log.Info("sessionManager."+method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, claims.ID),
		zap.String(constvars.LoggingMemberTypeKey, claims.MemberType),
	)
	return nil
}

// persist saves the token to storage and cookie, then decodes it.
func (m *sessionManager) persist(ctx context.Context, payload *models.AuthPayload) (*models.Claims, error) {
	if payload == nil || payload.AccessToken == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	err := m.Vault.Save(ctx, payload.AccessToken)
	if err != nil {
		return nil, err
	}

	return m.JWTManager.DecodeClaims(ctx, payload.AccessToken)
}

func (m *sessionManager) apply(claims *models.Claims) {
	m.Users.ApplyClaims(claims)
	m.setState(models.SessionState{Status: models.SessionAuthenticated, Role: claims.MemberType})
}

// failAuthentication tears the partial session down, raises one classified
// notification and returns an error carrying the same message.
func (m *sessionManager) failAuthentication(ctx context.Context, method string, err error, doctorSignup bool) error {
	requestID := utils.GetRequestID(ctx)
	failure := exceptions.ClassifyAuthFailure(err)
	message := exceptions.AuthFailureMessage(failure, doctorSignup)

	m.Log.Error("sessionManager."+method+" failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFailureKey, failure.String()),
		zap.Error(err),
	)

	m.teardown(ctx)
	m.notifyError(message)
	return exceptions.ErrAuthFailed(err, failure, message)
}

func (m *sessionManager) teardown(ctx context.Context) {
	err := m.Vault.Clear(ctx)
	if err != nil {
		m.Log.Warn("sessionManager.teardown error clearing token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	m.Users.Reset()
	m.setState(models.SessionState{Status: models.SessionAnonymous})
}

func (m *sessionManager) notifyError(message string) {
	m.Notifier.Notify(models.Notification{
		Kind:    models.NotificationError,
		Title:   constvars.NotifyTitleError,
		Message: message,
	})
}

func (m *sessionManager) setState(state models.SessionState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}
