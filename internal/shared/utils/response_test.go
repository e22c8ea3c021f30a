package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/shared/infrastructure/labapi"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusBadRequest, "bad request", errors.New("details"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "\"error\":\"bad request\"")
	assert.Contains(t, w.Body.String(), "\"details\":\"details\"")
}

func TestWriteError_NoDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, http.StatusBadGateway, "upstream down", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusCreated, map[string]string{"ok": "true"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "\"ok\":\"true\"")
}

type sampleBody struct {
	Nombre   string `json:"nombre" validate:"notblank"`
	Correo   string `json:"correo" validate:"required,email"`
	Cantidad int    `json:"cantidad" validate:"gt=0"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sampleBody{Nombre: "Ana", Correo: "ana@uni.edu", Cantidad: 1}))

	err := ValidateStruct(sampleBody{Nombre: "  ", Correo: "nope", Cantidad: 0})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "notblank", verr.Fields["nombre"])
	assert.Equal(t, "email", verr.Fields["correo"])
	assert.Equal(t, "gt=0", verr.Fields["cantidad"])
}

func TestDecodeAndValidate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nombre":"Ana","correo":"ana@uni.edu","cantidad":2}`))
	var body sampleBody
	require.NoError(t, DecodeAndValidate(req, &body))
	assert.Equal(t, 2, body.Cantidad)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeAndValidate(req, &body))
}

func TestWriteBadRequest(t *testing.T) {
	w := httptest.NewRecorder()
	WriteBadRequest(w, &ValidationError{Fields: map[string]string{"motivo": "required"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "\"motivo\":\"required\"")

	w = httptest.NewRecorder()
	WriteBadRequest(w, errors.New("invalid request body: EOF"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "solicitud invalida")
}

func TestWriteUpstreamError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteUpstreamError(w, "no se pudo guardar", &labapi.Error{Method: "POST", Path: "/docentes", StatusCode: http.StatusConflict})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no se pudo guardar")

	w = httptest.NewRecorder()
	WriteUpstreamError(w, "no se pudo cargar", errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}
