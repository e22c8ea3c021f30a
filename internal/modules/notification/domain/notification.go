package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeSolicitudEstudiante NotificationType = "solicitud_estudiante"
	NotificationTypeSolicitudDocente    NotificationType = "solicitud_docente"
	NotificationTypeInsumo              NotificationType = "insumo"
	NotificationTypeGeneral             NotificationType = "general"
)

// Normalize maps empty or unknown tags to general.
func (t NotificationType) Normalize() NotificationType {
	switch t {
	case NotificationTypeSolicitudEstudiante, NotificationTypeSolicitudDocente, NotificationTypeInsumo:
		return t
	default:
		return NotificationTypeGeneral
	}
}

// Route is the dashboard page a click on the notification leads to.
func (t NotificationType) Route() string {
	switch t.Normalize() {
	case NotificationTypeSolicitudEstudiante:
		return "/alumnos"
	case NotificationTypeSolicitudDocente:
		return "/docentes"
	case NotificationTypeInsumo:
		return "/supplies"
	default:
		return "/dashboard"
	}
}

// Icon names the icon the browser draws for the type.
func (t NotificationType) Icon() string {
	switch t.Normalize() {
	case NotificationTypeSolicitudEstudiante:
		return "user-graduate"
	case NotificationTypeSolicitudDocente:
		return "chalkboard-teacher"
	case NotificationTypeInsumo:
		return "box"
	default:
		return "bell"
	}
}

// Notification ids are UUIDv7, so sorting by id sorts by creation time.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}

// Toast is the transient acknowledgment pushed to connected dashboards.
type Toast struct {
	ID         uuid.UUID        `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Icon       string           `json:"icon"`
	Route      string           `json:"route"`
	DurationMs int64            `json:"duration_ms"`
	ExpiresAt  time.Time        `json:"expires_at"`
}

func NewToast(n Notification, duration time.Duration, now time.Time) Toast {
	return Toast{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		Icon:       n.Type.Icon(),
		Route:      n.Type.Route(),
		DurationMs: duration.Milliseconds(),
		ExpiresAt:  now.Add(duration),
	}
}

// Presenter surfaces a freshly created notification outside the store.
type Presenter interface {
	Present(n Notification)
}

// RelativeTime renders t relative to now the way the panel shows it.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "hace unos segundos"
	}
	if d < time.Hour {
		return plural(int(d/time.Minute), "minuto", "minutos")
	}
	if d < 24*time.Hour {
		return plural(int(d/time.Hour), "hora", "horas")
	}
	return plural(int(d/(24*time.Hour)), "día", "días")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "hace 1 " + one
	}
	return fmt.Sprintf("hace %d %s", n, many)
}
