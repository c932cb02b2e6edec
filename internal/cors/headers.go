package cors

const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type, Authorization, X-Requested-With"
	MaxAge       = "3600"
)

// Headers returns the CORS headers attached to every response.
// Preflight responses also get Access-Control-Max-Age.
func Headers(preflight bool) map[string]string {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  AllowOrigin,
		"Access-Control-Allow-Methods": AllowMethods,
		"Access-Control-Allow-Headers": AllowHeaders,
	}

	if preflight {
		headers["Access-Control-Max-Age"] = MaxAge
	}

	return headers
}
