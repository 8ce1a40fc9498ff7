package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingVisitorIDKey      = "visitor_id"
	LoggingMemberIDKey       = "member_id"
	LoggingMemberNickKey     = "member_nick"
	LoggingMemberTypeKey     = "member_type"
	LoggingOperationKey      = "operation"
	LoggingGraphQLOpKey      = "graphql_operation"
	LoggingFailureKey        = "failure"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingExchangeKey       = "exchange"
	LoggingSignalKey         = "signal"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingInputKey          = "input"
	LoggingUsedDefaultsKey   = "used_defaults"
	LoggingTargetKey         = "target"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingTotalKey          = "total"
	LoggingReplacedKey       = "replaced"
	LoggingClientRequestKey  = "is_client_request_id"
	LoggingLocationKey       = "location"
)
