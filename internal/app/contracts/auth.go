package contracts

import (
	"context"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/dto/requests"
)

// SessionUsecase builds the session manager of one visitor for the duration
// of a request.
type SessionUsecase interface {
	ForVisitor(visitorID string, jar CookieJar, notifier Notifier, navigator Navigator) SessionManager
}

type SessionManager interface {
	LogIn(ctx context.Context, nick, password string) error
	SignUpMember(ctx context.Context, input *requests.SignupMember) error
	SignUpDoctor(ctx context.Context, input *requests.SignupDoctor) error
	ForgotPassword(ctx context.Context, nick, phone string) (bool, error)
	ResetPassword(ctx context.Context, input *requests.ResetPassword) (bool, error)
	LogOut(ctx context.Context, shouldRedirect bool)
	Restore(ctx context.Context) error
	UpdateProfile(ctx context.Context, input *requests.UpdateMember, avatar *requests.Avatar) error
	State() models.SessionState
	Member() models.Member
	Doctor() models.Doctor
}
