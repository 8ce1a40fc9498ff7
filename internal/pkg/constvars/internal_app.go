package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_VISITOR_ID_KEY           ContextKey = "visitor_id"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
)

const (
	REQUEST_ID_PREFIX = "MDCR_SVC_"
)

const (
	ResourceAuth    = "auth"
	ResourceMembers = "members"
	ResourceDoctors = "doctors"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
