package server

import "time"

// HTTP server timeouts
const (
	readHeaderTimeout = 5 * time.Second
	maxRequestBytes   = 1 << 16
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
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
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}
