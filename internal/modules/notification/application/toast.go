package application

import (
	"encoding/json"
	"log"
	"time"

	"github.com/unilab/labdash/internal/modules/notification/domain"
)

const DefaultToastDuration = 5 * time.Second

// Broadcaster fans a message out to every connected dashboard.
type Broadcaster interface {
	BroadcastMessage(message []byte)
}

// Event is the envelope written on the websocket.
type Event struct {
	Event string       `json:"event"`
	Toast domain.Toast `json:"toast"`
}

// ToastPresenter pushes a toast event for every new notification. It keeps no
// state: dismissal and click-through happen in the browser.
type ToastPresenter struct {
	hub      Broadcaster
	duration time.Duration
	now      func() time.Time
}

var _ domain.Presenter = (*ToastPresenter)(nil)

func NewToastPresenter(hub Broadcaster, duration time.Duration) *ToastPresenter {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &ToastPresenter{hub: hub, duration: duration, now: time.Now}
}

func (p *ToastPresenter) Present(n domain.Notification) {
	msg, err := json.Marshal(Event{
		Event: "toast",
		Toast: domain.NewToast(n, p.duration, p.now()),
	})
	if err != nil {
		log.Printf("[ToastPresenter] marshal error: %v", err)
		return
	}
	p.hub.BroadcastMessage(msg)
}
