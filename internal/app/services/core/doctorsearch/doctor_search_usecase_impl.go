package doctorsearch

import (
	"context"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/app/services/shared/navigation"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/dto/responses"
	"medicare-portal/internal/pkg/utils"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type doctorSearchUsecase struct {
	DoctorAPI      contracts.DoctorAPI
	InternalConfig *config.InternalConfig
	Defaults       Defaults
	Baseline       models.FeeRange
	Log            *zap.Logger
}

var (
	doctorSearchUsecaseInstance contracts.DoctorSearchUsecase
	onceDoctorSearchUsecase     sync.Once
)

func NewDoctorSearchUsecase(doctorAPI contracts.DoctorAPI, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.DoctorSearchUsecase {
	onceDoctorSearchUsecase.Do(func() {
		doctorSearchUsecaseInstance = newDoctorSearchUsecase(doctorAPI, internalConfig, logger)
	})
	return doctorSearchUsecaseInstance
}

func newDoctorSearchUsecase(doctorAPI contracts.DoctorAPI, internalConfig *config.InternalConfig, logger *zap.Logger) *doctorSearchUsecase {
	return &doctorSearchUsecase{
		DoctorAPI:      doctorAPI,
		InternalConfig: internalConfig,
		Defaults: Defaults{
			Page:   internalConfig.Search.DefaultPage,
			Limit:  internalConfig.Search.DefaultLimit,
			SortBy: internalConfig.Search.DefaultSort,
		},
		Baseline: models.FeeRange{
			Min: internalConfig.Search.FeeBaselineMin,
			Max: internalConfig.Search.FeeBaselineMax,
		},
		Log: logger,
	}
}

// Search hydrates the controls from the page query and fetches the matching
// doctors. A non canonical input parameter is returned as a replace target.
func (uc *doctorSearchUsecase) Search(ctx context.Context, query url.Values) (*responses.Doctors, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorSearchUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInputKey, query.Get(constvars.SearchQueryParamInput)),
	)

	router := navigation.NewQueryRouter(constvars.PathDoctorSearch, query)
	synchronizer := NewSynchronizer(router, uc.Defaults, uc.Baseline, uc.Log)
	result := synchronizer.Hydrate()
	synchronizer.WriteBack()

	page, err := uc.DoctorAPI.GetDoctors(ctx, &result.Inquiry)
	if err != nil {
		uc.Log.Error("doctorSearchUsecase.Search error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	fallbacks := result.Fallbacks
	if fallbacks == nil {
		fallbacks = []string{}
	}

	uc.Log.Info("doctorSearchUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalKey, page.Total),
		zap.Bool(constvars.LoggingUsedDefaultsKey, result.UsedDefaults),
	)

	return &responses.Doctors{
		Controls:     result.Controls,
		Inquiry:      result.Inquiry,
		UsedDefaults: result.UsedDefaults,
		Fallbacks:    fallbacks,
		List:         page.List,
		Total:        page.Total,
		Navigation:   router.Replaced(),
	}, nil
}

// ApplyFilters replays control changes against the query of the page and
// returns where the page should replace its URL, if anywhere.
func (uc *doctorSearchUsecase) ApplyFilters(ctx context.Context, request *requests.DoctorFilters) (*responses.DoctorFilters, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorSearchUsecase.ApplyFilters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, request.Query),
	)

	query, err := url.ParseQuery(strings.TrimPrefix(request.Query, "?"))
	if err != nil {
		uc.Log.Warn("doctorSearchUsecase.ApplyFilters malformed query, using what parsed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	router := navigation.NewQueryRouter(constvars.PathDoctorSearch, query)
	synchronizer := NewSynchronizer(router, uc.Defaults, uc.Baseline, uc.Log)
	synchronizer.Sync()
	synchronizer.Update(func(controls *models.SearchControls) {
		request.Controls.Apply(controls)
	})

	uc.Log.Info("doctorSearchUsecase.ApplyFilters succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingReplacedKey, router.Replaced() != nil),
	)

	return &responses.DoctorFilters{
		Controls:   synchronizer.Controls(),
		Inquiry:    synchronizer.Inquiry(),
		Navigation: router.Replaced(),
	}, nil
}
