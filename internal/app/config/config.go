package config

import (
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                        utils.GetEnvString("APP_PORT", "8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1"),
			Address:                     utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:              utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:              utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			FrontendProxyTimeout:        utils.GetEnvDuration("APP_FRONTEND_PROXY_TIMEOUT", 15*time.Second),
			AllowedOrigins:              utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:   utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:     utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AuthRateLimitPerSecond:      utils.GetEnvFloat("APP_AUTH_RATE_LIMIT_PER_SECOND", 1),
			AuthRateLimitBurst:          utils.GetEnvInt("APP_AUTH_RATE_LIMIT_BURST", 5),
			AuthRateLimitBlockInSeconds: utils.GetEnvInt("APP_AUTH_RATE_LIMIT_BLOCK_IN_SECONDS", 60),
		},
		GraphQL: AppGraphQL{
			Endpoint:         utils.GetEnvString("GRAPHQL_ENDPOINT", "http://localhost:3007/graphql"),
			TimeoutInSeconds: utils.GetEnvInt("GRAPHQL_TIMEOUT_IN_SECONDS", 15),
		},
		Session: AppSession{
			CookieSecure:             utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			CookieDomain:             utils.GetEnvString("SESSION_COOKIE_DOMAIN", ""),
			InFlightLockTTLInSeconds: utils.GetEnvInt("SESSION_INFLIGHT_LOCK_TTL_IN_SECONDS", 30),
		},
		Search: AppSearch{
			DefaultPage:    utils.GetEnvInt("SEARCH_DEFAULT_PAGE", 1),
			DefaultLimit:   utils.GetEnvInt("SEARCH_DEFAULT_LIMIT", 6),
			DefaultSort:    utils.GetEnvString("SEARCH_DEFAULT_SORT", constvars.SortLabelMostViewed),
			FeeBaselineMin: utils.GetEnvFloat("SEARCH_FEE_BASELINE_MIN", 0),
			FeeBaselineMax: utils.GetEnvFloat("SEARCH_FEE_BASELINE_MAX", 1000),
		},
		Minio: AppMinio{
			BucketName:              utils.GetEnvString("APP_MINIO_BUCKET_NAME", "medicare-avatars"),
			AvatarPrefix:            utils.GetEnvString("APP_MINIO_AVATAR_PREFIX", "member"),
			AvatarMaxUploadSizeInMB: utils.GetEnvInt("APP_MINIO_AVATAR_MAX_UPLOAD_SIZE_IN_MB", 2),
			PublicBaseUrl:           utils.GetEnvString("APP_MINIO_PUBLIC_BASE_URL", "http://localhost:9000"),
		},
		RabbitMQ: AppRabbitMQ{
			SessionSignalExchange: utils.GetEnvString("APP_RABBITMQ_SESSION_SIGNAL_EXCHANGE", "session.signals"),
		},
	}
}
