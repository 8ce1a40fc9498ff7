package controllers

import (
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log                 *zap.Logger
	DoctorSearchUsecase contracts.DoctorSearchUsecase
	InternalConfig      *config.InternalConfig
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(logger *zap.Logger, doctorSearchUsecase contracts.DoctorSearchUsecase, internalConfig *config.InternalConfig) *DoctorController {
	onceDoctorController.Do(func() {
		doctorControllerInstance = &DoctorController{
			Log:                 logger,
			DoctorSearchUsecase: doctorSearchUsecase,
			InternalConfig:      internalConfig,
		}
	})
	return doctorControllerInstance
}

// FindDoctors reads the filters from the input and specialization query
// parameters of the search page. Malformed filters fall back to defaults.
func (ctrl *DoctorController) FindDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.DoctorSearchUsecase.Search(ctx, r.URL.Query())
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorsGetSuccess, result)
}

func (ctrl *DoctorController) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	request := new(requests.DoctorFilters)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	result, err := ctrl.DoctorSearchUsecase.ApplyFilters(ctx, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorFiltersProcessed, result)
}
