package constant

const (
	ContextKeyRequestID  = "requestid"
	ContextKeyTranslator = "T"

	RequestIDHeader = "X-Mergington-Request-ID"

	// SlimHeaderKey marks health check requests that should not be recorded by Sentry transaction tracing.
	SlimHeaderKey = "X-Slim"
)
