package contracts

import (
	"context"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/dto/requests"
)

type AuthAPI interface {
	LoginMember(ctx context.Context, nick, password string) (*models.AuthPayload, error)
	LoginDoctor(ctx context.Context, nick, password string) (*models.AuthPayload, error)
	SignupMember(ctx context.Context, input *requests.SignupMember) (*models.AuthPayload, error)
	SignupDoctor(ctx context.Context, input *requests.SignupDoctor) (*models.AuthPayload, error)
	ForgotPassword(ctx context.Context, nick, phone string) (bool, error)
	ResetPassword(ctx context.Context, input *requests.ResetPassword) (bool, error)
}

type MemberAPI interface {
	UpdateMember(ctx context.Context, accessToken string, input *requests.UpdateMember) (*models.AuthPayload, error)
}

type DoctorAPI interface {
	GetDoctors(ctx context.Context, inquiry *models.DoctorsInquiry) (*models.DoctorsPage, error)
}
