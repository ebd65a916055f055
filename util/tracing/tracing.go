package tracing

// Context carries the request identifiers attached to every incoming
// request by the tracing middleware.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
