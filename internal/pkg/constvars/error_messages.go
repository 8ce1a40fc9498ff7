package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"oneof":        "must be one of [%s]",
	"phone_number": "phone number must contain 6 to 15 digits",
	"nickname":     "must contain only alphanumeric characters",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientOperationInFlight             = "your previous request is still being processed"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientRequestTooLarge               = "the request is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevValidationFailed         = "validation failed"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevReadBody                 = "failed to read body"
	ErrDevRequestBodyTooLarge      = "request body exceeds %d bytes"

	// Auth messages
	ErrDevAuthFailed           = "authentication call failed with classification %s"
	ErrDevAuthTokenMissing     = "token missing from the auth payload"
	ErrDevAuthTokenDecode      = "failed to decode access token claims"
	ErrDevAuthOperationRunning = "operation %s already in flight"
	ErrDevAuthNotAuthenticated = "no access token in client storage"

	// HTTP messages
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	// GraphQL messages
	ErrDevGraphQLStatus   = "graphql endpoint returned status %d"
	ErrDevGraphQLDecode   = "failed to decode graphql response for %s"
	ErrDevGraphQLResponse = "graphql operation %s returned errors"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to unlock redis key"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to exchange %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
)
