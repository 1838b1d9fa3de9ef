package middleware

import (
	"net/http"
	"regexp"
)

var localhostOrigin = regexp.MustCompile(`^http://(localhost|127\.0\.0\.1)(:\d+)?$`)

// allowLocalhost accepts the configured origins plus any localhost port, so
// the panel can run against the API from an arbitrary dev server.
func allowLocalhost(allowedOrigins []string) func(r *http.Request, origin string) bool {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(_ *http.Request, origin string) bool {
		if _, ok := allowed[origin]; ok {
			return true
		}

		return localhostOrigin.MatchString(origin)
	}
}
