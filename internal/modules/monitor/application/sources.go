package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	notificationDomain "github.com/unilab/labdash/internal/modules/notification/domain"
	prefsDomain "github.com/unilab/labdash/internal/modules/preferences/domain"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
	suppliesDomain "github.com/unilab/labdash/internal/modules/supplies/domain"
)

// Notifier is the part of the notification store the monitors use.
type Notifier interface {
	Add(typ notificationDomain.NotificationType, title, message string, timestamp time.Time) notificationDomain.Notification
}

// NewSolicitudHandler notifies once per solicitud that appears after the first poll.
// Solicitudes without an id are skipped.
func NewSolicitudHandler(notifier Notifier, logger *slog.Logger) *DiffHandler[requestsDomain.Solicitud] {
	return NewDiffHandler(
		func(s requestsDomain.Solicitud) string { return s.ID.String() },
		func(_ context.Context, s requestsDomain.Solicitud) {
			notifier.Add(SolicitudNotification(s))
		},
		logger,
	)
}

// SolicitudNotification builds the Add arguments for a new solicitud.
func SolicitudNotification(s requestsDomain.Solicitud) (notificationDomain.NotificationType, string, string, time.Time) {
	typ := notificationDomain.NotificationTypeSolicitudEstudiante
	if s.TipoSolicitante.Normalize() == requestsDomain.TipoDocente {
		typ = notificationDomain.NotificationTypeSolicitudDocente
	}
	nombre := s.NombreSolicitante
	if nombre == "" {
		nombre = "Alguien"
	}
	msg := fmt.Sprintf("%s solicitó %s", nombre, s.Laboratorio)
	if s.Laboratorio == "" {
		msg = nombre + " envió una solicitud"
	}
	return typ, "Nueva solicitud", msg, time.Time{}
}

// LowStockHandler alerts once per insumo that drops to bajo or sin_stock.
// The alerted ids are mirrored to the preference store so a restart does not
// repeat them; an insumo that recovers leaves the set and may alert again.
type LowStockHandler struct {
	prefs    prefsDomain.Store
	notifier Notifier
	logger   *slog.Logger

	mu      sync.Mutex
	loaded  bool
	alerted map[string]struct{}
}

func NewLowStockHandler(prefs prefsDomain.Store, notifier Notifier, logger *slog.Logger) *LowStockHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LowStockHandler{prefs: prefs, notifier: notifier, logger: logger, alerted: map[string]struct{}{}}
}

func (h *LowStockHandler) Handle(ctx context.Context, items []suppliesDomain.Insumo) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.load(ctx); err != nil {
		return 0, err
	}

	next := make(map[string]struct{})
	alerts := 0
	for _, item := range items {
		if !item.IsLow() {
			continue
		}
		id := item.ID.String()
		next[id] = struct{}{}
		if _, done := h.alerted[id]; done {
			continue
		}
		h.notifier.Add(LowStockNotification(item))
		alerts++
	}

	if !sameSet(h.alerted, next) {
		h.alerted = next
		h.persist(ctx)
	}
	return alerts, nil
}

// AlertOnce raises the alert for a single low insumo unless it is already in
// the alerted set, and records it there. Page actions use it so they share
// the monitor's set.
func (h *LowStockHandler) AlertOnce(ctx context.Context, item suppliesDomain.Insumo) (bool, error) {
	if !item.IsLow() {
		return false, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.load(ctx); err != nil {
		return false, err
	}
	id := item.ID.String()
	if _, done := h.alerted[id]; done {
		return false, nil
	}
	h.alerted[id] = struct{}{}
	h.persist(ctx)
	h.notifier.Add(LowStockNotification(item))
	return true, nil
}

// load reads the persisted set on first use. Callers hold mu.
func (h *LowStockHandler) load(ctx context.Context) error {
	if h.loaded {
		return nil
	}
	ids, err := h.prefs.Members(ctx, prefsDomain.SetAlertedInsumos)
	if err != nil {
		return fmt.Errorf("load alerted insumos: %w", err)
	}
	for _, id := range ids {
		h.alerted[id] = struct{}{}
	}
	h.loaded = true
	return nil
}

// persist mirrors the alerted set to the store. Callers hold mu.
func (h *LowStockHandler) persist(ctx context.Context) {
	if err := h.prefs.Replace(ctx, prefsDomain.SetAlertedInsumos, setMembers(h.alerted)); err != nil {
		// the in-memory set still prevents repeats until restart
		h.logger.Warn("persist alerted insumos failed", "error", err)
	}
}

func (h *LowStockHandler) State() (bool, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loaded, len(h.alerted)
}

// LowStockNotification builds the Add arguments for an insumo below its minimum.
func LowStockNotification(item suppliesDomain.Insumo) (notificationDomain.NotificationType, string, string, time.Time) {
	if item.Nivel() == suppliesDomain.StockSinStock {
		return notificationDomain.NotificationTypeInsumo, "Insumo sin stock",
			fmt.Sprintf("%s quedó sin stock disponible", item.Nombre), time.Time{}
	}
	return notificationDomain.NotificationTypeInsumo, "Stock bajo",
		fmt.Sprintf("%s tiene %d disponibles (mínimo %d)", item.Nombre, item.StockDisponible(), item.StockMinimo.Int()),
		time.Time{}
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func setMembers(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
