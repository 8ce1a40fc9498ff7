package auth

import (
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/app/services/core/session"
	"sync"
	"time"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	AuthAPI         contracts.AuthAPI
	MemberAPI       contracts.MemberAPI
	JWTManager      contracts.JWTManager
	RedisRepository contracts.RedisRepository
	LockerService   contracts.LockerService
	SignalPublisher contracts.SignalPublisher
	MinioStorage    contracts.Storage
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

func NewSessionUsecase(
	authAPI contracts.AuthAPI,
	memberAPI contracts.MemberAPI,
	jwtManager contracts.JWTManager,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	signalPublisher contracts.SignalPublisher,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		sessionUsecaseInstance = &sessionUsecase{
			AuthAPI:         authAPI,
			MemberAPI:       memberAPI,
			JWTManager:      jwtManager,
			RedisRepository: redisRepository,
			LockerService:   lockerService,
			SignalPublisher: signalPublisher,
			MinioStorage:    minioStorage,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return sessionUsecaseInstance
}

// ForVisitor wires a manager around the durable storage of visitorID. The
// user projections start at rest; call Restore to hydrate them.
func (uc *sessionUsecase) ForVisitor(visitorID string, jar contracts.CookieJar, notifier contracts.Notifier, navigator contracts.Navigator) contracts.SessionManager {
	storage := session.NewClientStorage(uc.RedisRepository, visitorID)
	vault := session.NewTokenVault(storage, jar, uc.SignalPublisher, visitorID, session.CookieOptions{
		Secure: uc.InternalConfig.Session.CookieSecure,
		Domain: uc.InternalConfig.Session.CookieDomain,
	}, uc.Log)

	return &sessionManager{
		AuthAPI:        uc.AuthAPI,
		MemberAPI:      uc.MemberAPI,
		JWTManager:     uc.JWTManager,
		LockerService:  uc.LockerService,
		MinioStorage:   uc.MinioStorage,
		Vault:          vault,
		Users:          session.NewUserStore(),
		Notifier:       notifier,
		Navigator:      navigator,
		VisitorID:      visitorID,
		LockTTL:        time.Duration(uc.InternalConfig.Session.InFlightLockTTLInSeconds) * time.Second,
		InternalConfig: uc.InternalConfig,
		Log:            uc.Log,
		state:          models.SessionState{Status: models.SessionAnonymous},
	}
}
