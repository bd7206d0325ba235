package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Status server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Paths excluded from request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

const (
	RedactedValue     = "[REDACTED]"
	readHeaderTimeout = 5 * time.Second
)
