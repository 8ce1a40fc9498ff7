package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess           = "successfully login"
	LogoutSuccess          = "successfully logout"
	SignupSuccess          = "successfully signup"
	SessionGetSuccess      = "get session successfully"
	ForgotPasswordVerified = "member verified"
	ForgotPasswordRejected = "member not verified"
	ResetPasswordSuccess   = "password already reset successfully"
	ResetPasswordRejected  = "password was not reset"
	ProfileUpdatedSuccess  = "profile updated successfully"

	// Doctor search messages
	DoctorsGetSuccess      = "get doctors successfully"
	DoctorFiltersProcessed = "doctor filters processed"
)

// Notification texts shown to the user
const (
	NotifyTitleError   = "Error"
	NotifyTitleSuccess = "Success"

	NotifyCheckPassword         = "Please check your password again"
	NotifyUserBlocked           = "This user has been blocked"
	NotifyMemberAlreadyExists   = "This nickname or phone number already exists"
	NotifyDoctorAlreadyExists   = "This nickname, phone or license number already exists"
	NotifyGenericFailure        = "Failed, please try again"
	NotifyDoctorSignupSuccess   = "Your doctor account has been created"
	NotifyMemberNotVerified     = "Nickname and phone number do not match"
	NotifyPasswordResetSuccess  = "Your password has been changed, please login again"
	NotifyProfileUpdatedSuccess = "Your profile has been updated"
)
