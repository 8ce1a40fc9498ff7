package contracts

import (
	"context"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/dto/responses"
	"net/url"
)

type DoctorSearchUsecase interface {
	Search(ctx context.Context, query url.Values) (*responses.Doctors, error)
	ApplyFilters(ctx context.Context, request *requests.DoctorFilters) (*responses.DoctorFilters, error)
}
