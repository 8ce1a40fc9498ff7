package doctorsearch

import (
	"context"
	"errors"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockDoctorAPI struct {
	mock.Mock
}

func (m *mockDoctorAPI) GetDoctors(ctx context.Context, inquiry *models.DoctorsInquiry) (*models.DoctorsPage, error) {
	args := m.Called(ctx, inquiry)
	page, _ := args.Get(0).(*models.DoctorsPage)
	return page, args.Error(1)
}

func newTestUsecase(api *mockDoctorAPI) *doctorSearchUsecase {
	return newDoctorSearchUsecase(api, &config.InternalConfig{
		Search: config.AppSearch{
			DefaultPage:    1,
			DefaultLimit:   6,
			DefaultSort:    constvars.SortLabelMostViewed,
			FeeBaselineMin: 0,
			FeeBaselineMax: 1000,
		},
	}, zap.NewNop())
}

func TestDoctorSearchUsecase_Search(t *testing.T) {
	api := new(mockDoctorAPI)
	uc := newTestUsecase(api)
	query := url.Values{constvars.SearchQueryParamSpecialization: {"CARDIOLOGIST"}}

	api.On("GetDoctors", mock.Anything, mock.MatchedBy(func(inquiry *models.DoctorsInquiry) bool {
		return inquiry.Limit == 6 &&
			len(inquiry.Search.SpecializationList) == 1 &&
			inquiry.Search.SpecializationList[0] == "CARDIOLOGIST" &&
			inquiry.Search.PricesRange == nil
	})).Return(&models.DoctorsPage{
		List:  []models.Doctor{models.EmptyDoctor()},
		Total: 1,
	}, nil)

	result, err := uc.Search(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Len(t, result.List, 1)
	assert.True(t, result.UsedDefaults)
	assert.NotNil(t, result.Fallbacks)
	assert.Equal(t, "CARDIOLOGIST", result.Controls.SelectedSpecialization)
	require.NotNil(t, result.Navigation, "a browse link is canonicalized into the input parameter")
	api.AssertExpectations(t)
}

func TestDoctorSearchUsecase_Search_CleanURLStaysClean(t *testing.T) {
	api := new(mockDoctorAPI)
	uc := newTestUsecase(api)
	api.On("GetDoctors", mock.Anything, mock.Anything).Return(&models.DoctorsPage{List: []models.Doctor{}}, nil)

	result, err := uc.Search(context.Background(), url.Values{})

	require.NoError(t, err)
	assert.Nil(t, result.Navigation)
}

func TestDoctorSearchUsecase_Search_UpstreamError(t *testing.T) {
	api := new(mockDoctorAPI)
	uc := newTestUsecase(api)
	api.On("GetDoctors", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))

	result, err := uc.Search(context.Background(), url.Values{})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestDoctorSearchUsecase_ApplyFilters(t *testing.T) {
	uc := newTestUsecase(new(mockDoctorAPI))
	sortBy := constvars.SortLabelNewest
	page := 3

	result, err := uc.ApplyFilters(context.Background(), &requests.DoctorFilters{
		Query: "?utm_source=mail",
		Controls: models.SearchControlsPatch{
			SortBy:      &sortBy,
			CurrentPage: &page,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.SortLabelNewest, result.Controls.SortBy)
	assert.Equal(t, constvars.SortFieldCreatedAt, result.Inquiry.Sort)
	assert.Equal(t, 3, result.Inquiry.Page)
	require.NotNil(t, result.Navigation)

	target, err := url.Parse(result.Navigation.Target)
	require.NoError(t, err)
	assert.Equal(t, "mail", target.Query().Get("utm_source"))
	assert.Equal(t, Serialize(result.Inquiry), target.Query().Get(constvars.SearchQueryParamInput))
}

func TestDoctorSearchUsecase_ApplyFilters_NoChange(t *testing.T) {
	uc := newTestUsecase(new(mockDoctorAPI))

	result, err := uc.ApplyFilters(context.Background(), &requests.DoctorFilters{})

	require.NoError(t, err)
	assert.Nil(t, result.Navigation)
	assert.Equal(t, DefaultControls(uc.Defaults, uc.Baseline), result.Controls)
}
