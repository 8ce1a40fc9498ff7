package middlewares

import (
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	JWTManager     contracts.JWTManager
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, jwtManager contracts.JWTManager, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		JWTManager:     jwtManager,
		InternalConfig: internalConfig,
	}
}
