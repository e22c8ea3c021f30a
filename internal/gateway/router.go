package gateway

import (
	"net/http"
)

// Router wraps http.ServeMux and registers routes as public or operator-only
type Router struct {
	mux     *http.ServeMux
	protect func(http.Handler) http.Handler
}

// NewRouter creates a router; protect wraps every operator-only route.
// A nil protect leaves them open.
func NewRouter(protect func(http.Handler) http.Handler) *Router {
	if protect == nil {
		protect = func(h http.Handler) http.Handler { return h }
	}
	return &Router{
		mux:     http.NewServeMux(),
		protect: protect,
	}
}

// Mux returns the underlying http.ServeMux
func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

// Public registers a handler reachable without a session
func (r *Router) Public(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// Protected registers a handler that requires the operator session
func (r *Router) Protected(pattern string, handler http.HandlerFunc) {
	r.mux.Handle(pattern, r.protect(handler))
}
