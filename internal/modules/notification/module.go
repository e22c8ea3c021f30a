package notification

import (
	"time"

	"github.com/unilab/labdash/internal/modules/notification/application"
	"github.com/unilab/labdash/internal/modules/notification/infrastructure/websocket"
	notification_http "github.com/unilab/labdash/internal/modules/notification/interfaces/http"
)

// Module wires the notification store to the websocket toast presenter and
// the panel handlers. One Module lives for the whole process.
type Module struct {
	store   *application.Store
	handler *notification_http.NotificationHandler
	hub     *websocket.Hub
}

func NewModule(toastDuration time.Duration) *Module {
	hub := websocket.NewHub()
	go hub.Run()

	store := application.NewStore(application.NewToastPresenter(hub, toastDuration))
	handler := notification_http.NewNotificationHandler(store, hub)

	return &Module{
		store:   store,
		handler: handler,
		hub:     hub,
	}
}

func (m *Module) HTTPHandler() *notification_http.NotificationHandler {
	return m.handler
}

func (m *Module) Store() *application.Store {
	return m.store
}

// Shutdown closes every websocket connection.
func (m *Module) Shutdown() {
	m.hub.Stop()
}
