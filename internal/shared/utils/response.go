package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

// WriteJSON writes v as a JSON body with the given status
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WriteJSON] encode error: %v", err)
	}
}

// WriteError writes the inline error string the dashboard shows next to the
// failed action. err, when present, is added as details.
func WriteError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]interface{}{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	WriteJSON(w, status, body)
}

// WriteUpstreamError reports a failed call to the lab API: upstream client
// errors keep their status, anything else becomes 502.
func WriteUpstreamError(w http.ResponseWriter, message string, err error) {
	status := labapi.HTTPStatus(err)
	log.Printf("[Upstream] %s: %v", message, err)
	WriteError(w, status, message, nil)
}
