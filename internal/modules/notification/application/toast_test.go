package application

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/notification/domain"
)

type broadcasterMock struct {
	messages [][]byte
}

func (b *broadcasterMock) BroadcastMessage(message []byte) {
	b.messages = append(b.messages, message)
}

func TestToastPresenter_Present(t *testing.T) {
	hub := &broadcasterMock{}
	p := NewToastPresenter(hub, 0)
	fixed := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	n := domain.Notification{ID: uuid.New(), Type: domain.NotificationTypeSolicitudEstudiante, Title: "Nueva solicitud", Message: "Ana pidió Lab 2"}
	p.Present(n)

	require.Len(t, hub.messages, 1)
	var ev Event
	require.NoError(t, json.Unmarshal(hub.messages[0], &ev))
	assert.Equal(t, "toast", ev.Event)
	assert.Equal(t, n.ID, ev.Toast.ID)
	assert.Equal(t, "/alumnos", ev.Toast.Route)
	assert.Equal(t, int64(5000), ev.Toast.DurationMs)
	assert.True(t, fixed.Add(DefaultToastDuration).Equal(ev.Toast.ExpiresAt))
}

func TestStore_AddPresentsToast(t *testing.T) {
	hub := &broadcasterMock{}
	store := NewStore(NewToastPresenter(hub, 2*time.Second))

	store.Add(domain.NotificationTypeInsumo, "Insumo sin stock", "Pipeta", time.Time{})

	require.Len(t, hub.messages, 1)
	assert.Contains(t, string(hub.messages[0]), `"duration_ms":2000`)
	assert.Equal(t, 1, store.UnreadCount(), "toast is not persisted, the record is")
}
