package routers

import (
	"context"
	"encoding/json"
	"errors"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/delivery/http/controllers"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/dto/responses"
	"medicare-portal/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDoctorSearchUsecase struct {
	mock.Mock
}

func (m *MockDoctorSearchUsecase) Search(ctx context.Context, query url.Values) (*responses.Doctors, error) {
	args := m.Called(ctx, query)
	if result, ok := args.Get(0).(*responses.Doctors); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDoctorSearchUsecase) ApplyFilters(ctx context.Context, request *requests.DoctorFilters) (*responses.DoctorFilters, error) {
	args := m.Called(ctx, request)
	if result, ok := args.Get(0).(*responses.DoctorFilters); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func setupDoctorRouter() (*chi.Mux, *MockDoctorSearchUsecase) {
	usecase := new(MockDoctorSearchUsecase)
	doctorController := &controllers.DoctorController{
		Log:                 zap.NewNop(),
		DoctorSearchUsecase: usecase,
		InternalConfig:      &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 5}},
	}

	router := chi.NewRouter()
	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, doctorController)
	})
	return router, usecase
}

func TestDoctorRouter_FindDoctors(t *testing.T) {
	t.Run("passes the page query to the search", func(t *testing.T) {
		router, usecase := setupDoctorRouter()
		usecase.On("Search", mock.Anything, mock.MatchedBy(func(query url.Values) bool {
			return query.Get(constvars.SearchQueryParamSpecialization) == "CARDIOLOGIST"
		})).Return(&responses.Doctors{
			Controls:  models.SearchControls{SelectedSpecialization: "CARDIOLOGIST"},
			Fallbacks: []string{},
			List:      []models.Doctor{},
			Total:     3,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/doctors/?specialization=CARDIOLOGIST", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var envelope struct {
			Message string            `json:"message"`
			Data    responses.Doctors `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.Equal(t, constvars.DoctorsGetSuccess, envelope.Message)
		assert.Equal(t, 3, envelope.Data.Total)
		assert.Equal(t, "CARDIOLOGIST", envelope.Data.Controls.SelectedSpecialization)
		usecase.AssertExpectations(t)
	})

	t.Run("upstream failure maps to an error response", func(t *testing.T) {
		router, usecase := setupDoctorRouter()
		usecase.On("Search", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused")))

		req := httptest.NewRequest(http.MethodGet, "/doctors/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestDoctorRouter_ApplyFilters(t *testing.T) {
	router, usecase := setupDoctorRouter()
	usecase.On("ApplyFilters", mock.Anything, mock.MatchedBy(func(request *requests.DoctorFilters) bool {
		return request.Controls.CurrentPage != nil && *request.Controls.CurrentPage == 2
	})).Return(&responses.DoctorFilters{
		Controls:   models.SearchControls{CurrentPage: 2},
		Navigation: &models.Navigation{Target: "/doctors?input=x"},
	}, nil)

	rr := postJSON(t, router, "/doctors/filters", map[string]interface{}{
		"query":    "",
		"controls": map[string]interface{}{"currentPage": 2},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Message string                  `json:"message"`
		Data    responses.DoctorFilters `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, constvars.DoctorFiltersProcessed, envelope.Message)
	assert.Equal(t, 2, envelope.Data.Controls.CurrentPage)
	usecase.AssertExpectations(t)
}

func TestDoctorRouter_ApplyFiltersRejectsUnknownSelections(t *testing.T) {
	tests := []struct {
		name     string
		controls map[string]interface{}
	}{
		{"specialization", map[string]interface{}{"selectedSpecialization": "cardiologist"}},
		{"consultation type", map[string]interface{}{"selectedConsultationType": "PHONE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, usecase := setupDoctorRouter()

			rr := postJSON(t, router, "/doctors/filters", map[string]interface{}{
				"query":    "",
				"controls": tt.controls,
			})

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			usecase.AssertNotCalled(t, "ApplyFilters")
		})
	}
}
