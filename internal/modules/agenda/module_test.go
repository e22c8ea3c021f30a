package agenda_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/agenda"
	requestsDomain "github.com/unilab/labdash/internal/modules/requests/domain"
)

type fakeSolicitudes struct {
	requestsDomain.Repository
}

func (fakeSolicitudes) List(context.Context) ([]requestsDomain.Solicitud, error) {
	return []requestsDomain.Solicitud{}, nil
}

func TestNewModule(t *testing.T) {
	m := agenda.NewModule(fakeSolicitudes{}, time.Minute, time.Second, nil)
	require.NotNil(t, m)
	assert.NotNil(t, m.HTTPHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	month, err := m.Service().Month(context.Background(), "2024-05")
	require.NoError(t, err)
	assert.Len(t, month.Dias, 31)
}
