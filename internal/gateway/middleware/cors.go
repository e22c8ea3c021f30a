package middleware

import (
	"net/http"
	"strings"
)

// CORSMiddleware allows the dashboard origins listed in allowedOrigins, a
// comma separated list or "*".
func CORSMiddleware(next http.Handler, allowedOrigins string) http.Handler {
	wildcard := strings.TrimSpace(allowedOrigins) == "*"
	allowed := make(map[string]struct{})
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = struct{}{}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		validOrigin := false
		if wildcard {
			validOrigin = true
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if _, ok := allowed[origin]; ok && origin != "" {
			validOrigin = true
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}

		if validOrigin {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
