package constvars

// Client storage keys
const (
	StorageKeyAccessToken = "accessToken"
	StorageKeyLoginSignal = "login"

	StorageNamespaceFormat = "client:%s:%s"
	InFlightLockKeyFormat  = "inflight:%s:%s"
)

// Cookies
const (
	CookieAccessToken       = "accessToken"
	CookieVisitorID         = "visitorId"
	CookieAccessTokenMaxAge = 604800
	CookieVisitorIDMaxAge   = 31536000
)

// Member types carried by the access token
const (
	MemberTypePatient = "PATIENT"
	MemberTypeDoctor  = "DOCTOR"
	MemberTypeAdmin   = "ADMIN"
)

// Landing areas
const (
	LandingHome          = "/"
	LandingDoctor        = "/doctor"
	LandingAdmin         = "/admin"
	PathLogin            = "/auth/login"
	PathSignup           = "/auth/signup"
	PathResetPassword    = "/auth/reset-password"
	ResetPasswordNickKey = "memberNick"
	ResetPasswordPhone   = "memberPhone"
)

// Session operation kinds guarded against double submission
const (
	OperationLogin          = "login"
	OperationSignupMember   = "signup-member"
	OperationSignupDoctor   = "signup-doctor"
	OperationForgotPassword = "forgot-password"
	OperationResetPassword  = "reset-password"
	OperationUpdateProfile  = "update-profile"
)

// Session signals
const (
	SignalLogin  = "login"
	SignalLogout = "logout"
)

// GraphQL error codes
const (
	GraphQLCodeMemberNotFound = "MEMBER_NOT_FOUND"
	GraphQLCodeWrongPassword  = "WRONG_PASSWORD"
	GraphQLCodeBlockedUser    = "BLOCKED_USER"
	GraphQLCodeAlreadyExists  = "ALREADY_EXISTS"
)
