package controllers

import (
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/dto/requests"
	"medicare-portal/internal/pkg/dto/responses"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
	InternalConfig *config.InternalConfig
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase, internalConfig *config.InternalConfig) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			Log:            logger,
			SessionUsecase: sessionUsecase,
			InternalConfig: internalConfig,
		}
	})
	return authControllerInstance
}

// Me hydrates the session of the visitor on page load.
func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	err := manager.Restore(ctx)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, recorder)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionGetSuccess, sessionResponse(manager, recorder))
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	err = manager.LogIn(ctx, request.Nick, request.Password)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, recorder)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, sessionResponse(manager, recorder))
}

func (ctrl *AuthController) SignupMember(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SignupMember)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSignupMemberRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	err = manager.SignUpMember(ctx, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, recorder)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccess, sessionResponse(manager, recorder))
}

func (ctrl *AuthController) SignupDoctor(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SignupDoctor)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSignupDoctorRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	err = manager.SignUpDoctor(ctx, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, recorder)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccess, sessionResponse(manager, recorder))
}

// ForgotPassword unlocks the reset page for a verified nick and phone pair.
// Both travel to it as plain query parameters.
func (ctrl *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ForgotPassword)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeForgotPasswordRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	verified, err := manager.ForgotPassword(ctx, request.MemberNick, request.MemberPhone)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, recorder)
		return
	}

	message := constvars.ForgotPasswordRejected
	if verified {
		message = constvars.ForgotPasswordVerified
		recorder.Navigate(resetPasswordTarget(request.MemberNick, request.MemberPhone))
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, responses.ForgotPassword{
		Verified:      verified,
		Notifications: recorder.Notifications(),
		Navigation:    recorder.Navigation(),
	})
}

func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResetPassword)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeResetPasswordRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	reset, err := manager.ResetPassword(ctx, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, recorder)
		return
	}

	message := constvars.ResetPasswordRejected
	if reset {
		message = constvars.ResetPasswordSuccess
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, responses.ResetPassword{
		Reset:         reset,
		Notifications: recorder.Notifications(),
		Navigation:    recorder.Navigation(),
	})
}

// Logout navigates home unless called with redirect=false.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	shouldRedirect := true
	if value := r.URL.Query().Get("redirect"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			shouldRedirect = parsed
		}
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	manager.LogOut(ctx, shouldRedirect)

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, sessionResponse(manager, recorder))
}

func resetPasswordTarget(nick, phone string) string {
	query := url.Values{}
	query.Set(constvars.ResetPasswordNickKey, nick)
	query.Set(constvars.ResetPasswordPhone, phone)
	return constvars.PathResetPassword + "?" + query.Encode()
}
