package controllers

import (
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/contracts"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

const avatarFormField = "avatar"

type MemberController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
	InternalConfig *config.InternalConfig
}

var (
	memberControllerInstance *MemberController
	onceMemberController     sync.Once
)

func NewMemberController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase, internalConfig *config.InternalConfig) *MemberController {
	onceMemberController.Do(func() {
		memberControllerInstance = &MemberController{
			Log:            logger,
			SessionUsecase: sessionUsecase,
			InternalConfig: internalConfig,
		}
	})
	return memberControllerInstance
}

// UpdateProfile takes a multipart form of profile fields with an optional
// avatar image.
func (ctrl *MemberController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	maxAvatarBytes := int64(ctrl.InternalConfig.Minio.AvatarMaxUploadSizeInMB) << 20

	err := r.ParseMultipartForm(maxAvatarBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := utils.BuildUpdateMemberRequest(r)
	utils.SanitizeUpdateMemberRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	avatar, err := utils.ReadAvatar(r, avatarFormField, maxAvatarBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	manager, recorder := sessionFor(ctrl.SessionUsecase, w, r)
	err = manager.UpdateProfile(ctx, request, avatar)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err, recorder)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, sessionResponse(manager, recorder))
}
