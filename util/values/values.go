package values

type contextKey string

// ContextTracingKey is the context key under which the per-request
// tracing context is stored.
const ContextTracingKey = contextKey("tracing-context")

// ContextAdminKey is the context key under which the authenticated
// admin record is stored by the auth middleware.
const ContextAdminKey = contextKey("admin")

const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-Id"
)

// Response statuses. These map to HTTP status codes via util.StatusCode.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	Failed         = "failed"
	BadRequestBody = "bad-request"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
)
