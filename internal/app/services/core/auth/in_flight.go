package auth

import (
	"context"
	"fmt"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

// inFlight runs fn while holding the lock of one operation kind for this
// visitor. A second attempt fails fast with ErrOperationInFlight.
func (m *sessionManager) inFlight(ctx context.Context, operation string, fn func() error) error {
	requestID := utils.GetRequestID(ctx)
	key := fmt.Sprintf(constvars.InFlightLockKeyFormat, m.VisitorID, operation)

	acquired, lockValue, err := m.LockerService.TryLock(ctx, key, m.LockTTL)
	if err != nil {
		m.Log.Error("sessionManager.inFlight error acquiring lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.Error(err),
		)
		m.notifyError(constvars.NotifyGenericFailure)
		return err
	}
	if !acquired {
		m.Log.Warn("sessionManager.inFlight operation already running",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, operation),
		)
		return exceptions.ErrOperationInFlight(nil, operation)
	}

	defer func() {
		err := m.LockerService.Unlock(context.WithoutCancel(ctx), key, lockValue)
		if err != nil {
			m.Log.Warn("sessionManager.inFlight error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOperationKey, operation),
				zap.Error(err),
			)
		}
	}()

	return utils.LogOperation(m.Log, operation, requestID, fn)
}
