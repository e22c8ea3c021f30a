package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unilab/labdash/internal/gateway/middleware"
	agenda_http "github.com/unilab/labdash/internal/modules/agenda/interfaces/http"
	"github.com/unilab/labdash/internal/modules/directory"
	monitor_http "github.com/unilab/labdash/internal/modules/monitor/interfaces/http"
	movements_http "github.com/unilab/labdash/internal/modules/movements/interfaces/http"
	notification_http "github.com/unilab/labdash/internal/modules/notification/interfaces/http"
	reports_http "github.com/unilab/labdash/internal/modules/reports/interfaces/http"
	requests_http "github.com/unilab/labdash/internal/modules/requests/interfaces/http"
	session_http "github.com/unilab/labdash/internal/modules/session/interfaces/http"
	shell_http "github.com/unilab/labdash/internal/modules/shell/interfaces/http"
	supplies_http "github.com/unilab/labdash/internal/modules/supplies/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthMiddleware      *middleware.AuthMiddleWare
	SessionHandler      *session_http.SessionHandler
	NotificationHandler *notification_http.NotificationHandler
	MonitorHandler      *monitor_http.MonitorHandler
	ShellHandler        *shell_http.ShellHandler
	SupplyHandler       *supplies_http.SupplyHandler
	RequestHandler      *requests_http.RequestHandler
	DocenteHandler      *directory.DocenteHandler
	AlumnoHandler       *directory.AlumnoHandler
	MovementHandler     *movements_http.MovementHandler
	AgendaHandler       *agenda_http.AgendaHandler
	ReportHandler       *reports_http.ReportHandler
	// ExportsDir is served at /exports/ when reports are archived on disk
	ExportsDir string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	var protect func(http.Handler) http.Handler
	if config.AuthMiddleware != nil {
		protect = config.AuthMiddleware.RequireAuth
	}
	r := NewRouter(protect)

	// Health Check
	r.Public("GET /health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	// Prometheus Metrics Endpoint
	r.Public("/metrics", promhttp.Handler())

	// Session Routes
	r.Public("POST /login", http.HandlerFunc(config.SessionHandler.Login))
	r.Protected("GET /me", config.SessionHandler.Me)

	// Archived reports; browser links carry the session in ?token=
	if config.ExportsDir != "" {
		files := http.StripPrefix("/exports/", http.FileServer(http.Dir(config.ExportsDir)))
		r.Protected("GET /exports/", files.ServeHTTP)
	}

	// Notification Routes
	r.Protected("GET /ws", config.NotificationHandler.Subscribe)
	r.Protected("GET /api/notifications", config.NotificationHandler.ListNotifications)
	r.Protected("POST /api/notifications", config.NotificationHandler.Create)
	r.Protected("DELETE /api/notifications", config.NotificationHandler.Clear)
	r.Protected("GET /api/notifications/unread-count", config.NotificationHandler.UnreadCount)
	r.Protected("PATCH /api/notifications/read-all", config.NotificationHandler.MarkAllAsRead)
	r.Protected("PATCH /api/notifications/{id}/read", config.NotificationHandler.MarkAsRead)
	r.Protected("GET /api/monitors", config.MonitorHandler.List)

	// Shell Routes
	r.Protected("GET /api/shell/navigation", config.ShellHandler.Navigation)
	r.Protected("GET /api/shell/search", config.ShellHandler.Search)
	r.Protected("GET /api/shell/preferences", config.ShellHandler.GetPreferences)
	r.Protected("PUT /api/shell/preferences", config.ShellHandler.UpdatePreferences)
	r.Protected("POST /api/shell/preferences/font-scale", config.ShellHandler.AdjustFontScale)

	// Supplies Routes
	r.Protected("GET /api/supplies", config.SupplyHandler.List)
	r.Protected("GET /api/supplies/summary", config.SupplyHandler.Summary)
	r.Protected("GET /api/supplies/{id}", config.SupplyHandler.Get)
	r.Protected("POST /api/supplies", config.SupplyHandler.Create)
	r.Protected("PUT /api/supplies/{id}", config.SupplyHandler.Update)
	r.Protected("DELETE /api/supplies/{id}", config.SupplyHandler.Delete)
	r.Protected("GET /api/supplies/{id}/maintenance", config.SupplyHandler.Maintenance)
	r.Protected("POST /api/supplies/{id}/maintenance", config.SupplyHandler.LogMaintenance)

	// Solicitudes Routes
	r.Protected("GET /api/requests", config.RequestHandler.List)
	r.Protected("GET /api/requests/{id}", config.RequestHandler.Get)
	r.Protected("POST /api/requests/{id}/approve", config.RequestHandler.Approve)
	r.Protected("POST /api/requests/{id}/reject", config.RequestHandler.Reject)
	r.Protected("POST /api/requests/{id}/complete", config.RequestHandler.Complete)

	// Directory Routes
	r.Protected("GET /api/docentes", config.DocenteHandler.List)
	r.Protected("POST /api/docentes", config.DocenteHandler.Create)
	r.Protected("PUT /api/docentes/{id}", config.DocenteHandler.Update)
	r.Protected("DELETE /api/docentes/{id}", config.DocenteHandler.Delete)
	r.Protected("GET /api/alumnos", config.AlumnoHandler.List)
	r.Protected("POST /api/alumnos", config.AlumnoHandler.Create)
	r.Protected("PUT /api/alumnos/{id}", config.AlumnoHandler.Update)
	r.Protected("DELETE /api/alumnos/{id}", config.AlumnoHandler.Delete)

	// Movements, Agenda and Reports Routes
	r.Protected("GET /api/movements", config.MovementHandler.List)
	r.Protected("GET /api/movements/grouped", config.MovementHandler.Grouped)
	r.Protected("GET /api/agenda", config.AgendaHandler.Month)
	r.Protected("GET /api/reports/summary", config.ReportHandler.Summary)
	r.Protected("POST /api/reports/export", config.ReportHandler.Export)

	return r.Mux()
}

// NewHandler wraps the routes with the CORS and metrics middleware
func NewHandler(config RouterConfig, allowedOrigins string) http.Handler {
	return middleware.CORSMiddleware(middleware.PrometheusMiddleware(SetupRoutes(config)), allowedOrigins)
}
