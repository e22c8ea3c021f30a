package http

import (
	"net/http"

	"github.com/unilab/labdash/internal/modules/monitor/domain"
	"github.com/unilab/labdash/internal/shared/utils"
)

// StatusSource lists the running monitors
type StatusSource interface {
	Statuses() []domain.Status
}

type MonitorHandler struct {
	source StatusSource
}

func NewMonitorHandler(source StatusSource) *MonitorHandler {
	return &MonitorHandler{source: source}
}

// List handles GET /api/monitors
func (h *MonitorHandler) List(w http.ResponseWriter, r *http.Request) {
	statuses := h.source.Statuses()
	if statuses == nil {
		statuses = []domain.Status{}
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": statuses})
}
