package config

import "time"

type InternalConfig struct {
	App      App
	GraphQL  AppGraphQL
	Session  AppSession
	Search   AppSearch
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                         string
	Port                        string
	Version                     string
	Address                     string
	EndpointPrefix              string
	FrontendDomain              string
	FrontendProxyTimeout        time.Duration
	AllowedOrigins              []string
	MaxRequests                 int
	MaxTimeRequestsPerSeconds   int
	ShutdownTimeoutInSeconds    int
	RequestTimeoutInSeconds     int
	RequestBodyLimitInMegabyte  int
	AuthRateLimitPerSecond      float64
	AuthRateLimitBurst          int
	AuthRateLimitBlockInSeconds int
}

type AppGraphQL struct {
	Endpoint         string
	TimeoutInSeconds int
}

type AppSession struct {
	CookieSecure             bool
	CookieDomain             string
	InFlightLockTTLInSeconds int
}

// AppSearch holds the defaults the doctor search falls back to.
type AppSearch struct {
	DefaultPage    int
	DefaultLimit   int
	DefaultSort    string
	FeeBaselineMin float64
	FeeBaselineMax float64
}

type AppMinio struct {
	BucketName              string
	AvatarPrefix            string
	AvatarMaxUploadSizeInMB int
	PublicBaseUrl           string
}

type AppRabbitMQ struct {
	SessionSignalExchange string
}
