package controllers

import (
	"context"
	"errors"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/services/core/session"
	"medicare-portal/internal/app/services/shared/notifier"
	"medicare-portal/internal/pkg/dto/responses"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// sessionFor builds the session manager of the visitor behind r. The recorder
// collects the notifications and navigation the manager decides on.
func sessionFor(usecase contracts.SessionUsecase, w http.ResponseWriter, r *http.Request) (contracts.SessionManager, *notifier.Recorder) {
	recorder := notifier.NewRecorder()
	jar := session.NewHTTPCookieJar(w, r)
	return usecase.ForVisitor(utils.GetVisitorID(r.Context()), jar, recorder, recorder), recorder
}

func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func sessionResponse(manager contracts.SessionManager, recorder *notifier.Recorder) responses.Session {
	return responses.Session{
		State:         manager.State(),
		Member:        manager.Member(),
		Doctor:        manager.Doctor(),
		Notifications: recorder.Notifications(),
		Navigation:    recorder.Navigation(),
	}
}

func buildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error, recorder *notifier.Recorder) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	if recorder == nil {
		utils.BuildErrorResponse(log, w, err)
		return
	}
	utils.BuildErrorResponse(log, w, err, recorder.Notifications()...)
}
