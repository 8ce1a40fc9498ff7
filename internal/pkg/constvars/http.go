package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML         = "text/html"
	MIMETextPlain        = "text/plain"
	MIMEApplicationJSON  = "application/json"
	MIMEApplicationForm  = "application/x-www-form-urlencoded"
	MIMEOctetStream      = "application/octet-stream"
	MIMEMultipartForm    = "multipart/form-data"
	MIMEImageJPEG        = "image/jpeg"
	MIMEImagePNG         = "image/png"
	MIMEImageWEBP        = "image/webp"
	MIMEApplicationJSONU = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusFound               = 302
	StatusSeeOther            = 303
	StatusTemporaryRedirect   = 307
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusRequestTooLarge     = 413
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization   = "Authorization"
	HeaderAccept          = "Accept"
	HeaderCookie          = "Cookie"
	HeaderSetCookie       = "Set-Cookie"
	HeaderContentType     = "Content-Type"
	HeaderContentLength   = "Content-Length"
	HeaderLocation        = "Location"
	HeaderUserAgent       = "User-Agent"
	HeaderXForwardedFor   = "X-Forwarded-For"
	HeaderXForwardedHost  = "X-Forwarded-Host"
	HeaderXForwardedProto = "X-Forwarded-Proto"
	HeaderXRequestID      = "X-Request-Id"
	HeaderRetryAfter      = "Retry-After"
)

const (
	AuthorizationBearerFormat = "Bearer %s"
)
