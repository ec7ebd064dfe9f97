package constant

type contextKey string

// RequestIDKey carries the per-request correlation id through context.
const RequestIDKey contextKey = "request_id"

// DefaultLocation is assigned when supplier receptions auto-register an unknown SKU.
const DefaultLocation = "MAIN"
