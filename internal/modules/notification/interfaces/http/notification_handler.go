package http

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/unilab/labdash/internal/gateway/middleware"
	"github.com/unilab/labdash/internal/modules/notification/application"
	"github.com/unilab/labdash/internal/modules/notification/domain"
	"github.com/unilab/labdash/internal/modules/notification/infrastructure/websocket"
	"github.com/unilab/labdash/internal/shared/utils"
)

type NotificationHandler struct {
	store *application.Store
	hub   *websocket.Hub
	now   func() time.Time
}

func NewNotificationHandler(store *application.Store, hub *websocket.Hub) *NotificationHandler {
	return &NotificationHandler{store: store, hub: hub, now: time.Now}
}

// CreateNotificationRequest is a notification raised directly by a page action.
type CreateNotificationRequest struct {
	Type      domain.NotificationType `json:"type"`
	Title     string                  `json:"title" validate:"required,notblank,max=200"`
	Message   string                  `json:"message" validate:"required,notblank,max=1000"`
	Timestamp *time.Time              `json:"timestamp,omitempty"`
}

type notificationView struct {
	domain.Notification
	Relative string `json:"relative"`
}

func (h *NotificationHandler) view(n domain.Notification, now time.Time) notificationView {
	return notificationView{Notification: n, Relative: domain.RelativeTime(n.Timestamp, now)}
}

func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	_, operator, ok := middleware.OperatorFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	websocket.ServeWs(h.hub, w, r, operator)
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	items, unread := h.store.Snapshot()

	now := h.now()
	data := make([]notificationView, 0, len(items))
	for _, n := range items {
		data = append(data, h.view(n, now))
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data":         data,
		"unread_count": unread,
	})
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]int{"count": h.store.UnreadCount()})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid notification id", nil)
		return
	}

	// unknown or already read ids are a no-op
	h.store.MarkAsRead(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkAllAsRead()
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateNotificationRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.WriteBadRequest(w, err)
		return
	}

	var ts time.Time
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}
	n := h.store.Add(req.Type, req.Title, req.Message, ts)
	log.Printf("[NotificationHandler] page action notification %s (%s)", n.ID, n.Type)

	utils.WriteJSON(w, http.StatusCreated, h.view(n, h.now()))
}
