package jwtmanager

import (
	"context"
	"errors"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager reads access tokens issued by the upstream API. Signatures are
// never checked here: the API that issued the token remains the only
// authority, the decoded claims only drive what the page renders.
type JWTManager struct {
	log    *zap.Logger
	parser *jwt.Parser
}

func NewJWTManager(log *zap.Logger) contracts.JWTManager {
	return &JWTManager{
		log:    log,
		parser: jwt.NewParser(),
	}
}

// DecodeClaims decodes the payload of token into the claims superset.
func (j *JWTManager) DecodeClaims(ctx context.Context, token string) (*models.Claims, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Debug("JWTManager.DecodeClaims called", zap.String(constvars.LoggingRequestIDKey, requestID))

	token = strings.TrimSpace(token)
	if token == "" {
		err := exceptions.ErrTokenDecode(errors.New("token is empty"))
		j.log.Error("JWTManager.DecodeClaims empty token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	claims := new(models.Claims)
	_, _, err := j.parser.ParseUnverified(token, claims)
	if err != nil {
		j.log.Error("JWTManager.DecodeClaims error parsing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenDecode(err)
	}

	if claims.ID == "" {
		err := exceptions.ErrTokenDecode(errors.New("token has no _id claim"))
		j.log.Error("JWTManager.DecodeClaims missing identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	j.log.Debug("JWTManager.DecodeClaims succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, claims.ID),
		zap.String(constvars.LoggingMemberTypeKey, claims.MemberType),
	)
	return claims, nil
}

// PeekRole returns the memberType claim. It is a redirect hint for page
// routing and must not be used to authorize anything.
func (j *JWTManager) PeekRole(token string) (string, bool) {
	claims := jwt.MapClaims{}
	_, _, err := j.parser.ParseUnverified(token, claims)
	if err != nil {
		return "", false
	}

	role, ok := claims["memberType"].(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
