package labapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx answer from the lab API.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("lab api %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("lab api %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// HTTPStatus maps an upstream failure onto the status the dashboard should see:
// client errors pass through, everything else is a bad gateway.
func HTTPStatus(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
