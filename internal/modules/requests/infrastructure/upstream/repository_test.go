package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/requests/domain"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

func newRepo(t *testing.T, handler http.HandlerFunc) *Repository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRepository(labapi.NewClientWithHTTP(srv.URL, srv.Client()))
}

func TestRepository_ListNormalizes(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/solicitudes", r.URL.Path)
		w.Write([]byte(`[{"id":1,"estado":"aprobada","tipo_solicitante":"DOCENTE"},{"id":2}]`))
	})

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.EstadoAprobada, items[0].Estado)
	assert.Equal(t, domain.TipoDocente, items[0].TipoSolicitante)
	assert.Equal(t, domain.EstadoPendiente, items[1].Estado)
	assert.Equal(t, domain.TipoEstudiante, items[1].TipoSolicitante)
}

func TestRepository_GetNotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := repo.Get(context.Background(), "5")
	assert.ErrorIs(t, err, domain.ErrSolicitudNotFound)

	_, err = repo.UpdateEstado(context.Background(), "5", domain.EstadoUpdate{Estado: domain.EstadoAprobada})
	assert.ErrorIs(t, err, domain.ErrSolicitudNotFound)
}

func TestRepository_UpdateEstado(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/solicitudes/7", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Rechazada", body["estado"])
		assert.Equal(t, "sin cupo", body["motivo_rechazo"])
		w.Write([]byte(`{"id":7,"estado":"Rechazada","motivo_rechazo":"sin cupo"}`))
	})

	s, err := repo.UpdateEstado(context.Background(), "7", domain.EstadoUpdate{Estado: domain.EstadoRechazada, MotivoRechazo: "sin cupo"})
	require.NoError(t, err)
	assert.Equal(t, domain.EstadoRechazada, s.Estado)
	assert.Equal(t, "sin cupo", s.MotivoRechazo)
}

func TestRepository_UpstreamConflictPassesThrough(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "transicion invalida", http.StatusUnprocessableEntity)
	})

	_, err := repo.UpdateEstado(context.Background(), "7", domain.EstadoUpdate{Estado: domain.EstadoCompletada})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, labapi.HTTPStatus(err))
}
