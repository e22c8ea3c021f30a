package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/movements/domain"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

func TestRepository_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movimientos", r.URL.Path)
		w.Write([]byte(`[{"id":1,"insumo_id":4,"insumo_nombre":"Pipeta","solicitud_id":null,"tipo":"prestamo","cantidad":"3","fecha":"2024-05-01T10:00:00"}]`))
	}))
	defer srv.Close()

	items, err := NewRepository(labapi.NewClientWithHTTP(srv.URL, srv.Client())).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.TipoPrestamo, items[0].Tipo)
	assert.Equal(t, 3, items[0].Cantidad.Int())
	assert.Empty(t, items[0].SolicitudID)
	assert.Equal(t, 10, items[0].Fecha.Hour())
}

func TestRepository_ListError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRepository(labapi.NewClientWithHTTP(srv.URL, srv.Client())).List(context.Background())
	assert.ErrorContains(t, err, "list movimientos")
}
