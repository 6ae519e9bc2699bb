package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCacheControl   = "Cache-Control"
	HeaderCookie         = "Cookie"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueNoStore              = "no-store"
)

// APIPathPrefix is the versioned machine API
const APIPathPrefix = "/api/"

// sensitiveHeaders are logged as RedactedValue
var sensitiveHeaders = []string{
	HeaderAPIKey,
	HeaderAuthorization,
	HeaderCookie,
}

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// Paths whose request logs drop to debug level. Frame ticks arrive many
// times a second per machine.
var quietSuffixes = []string{
	"/tick",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Rate limiting defaults. A client animating one machine at 30 frames per
// second sends 9000 ticks per window.
const (
	DefaultRateWindow          = 5 * time.Minute
	DefaultMaxRequestsPerIP    = 20000
	DefaultFailedAuthThreshold = 5
	rateLogEvery               = 100
)

// Server limits
const (
	MaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout   = 5 * time.Second
)
