package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/unilab/labdash/internal/modules/shell/domain"
	shellhttp "github.com/unilab/labdash/internal/modules/shell/interfaces/http"
)

type MockShellService struct {
	mock.Mock
}

func (m *MockShellService) Navigation() []domain.NavEntry {
	return m.Called().Get(0).([]domain.NavEntry)
}

func (m *MockShellService) Search(query string) []domain.NavEntry {
	return m.Called(query).Get(0).([]domain.NavEntry)
}

func (m *MockShellService) Preferences(ctx context.Context) (domain.Preferences, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *MockShellService) UpdatePreferences(ctx context.Context, u domain.PreferencesUpdate) (domain.Preferences, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *MockShellService) AdjustFontScale(ctx context.Context, action domain.FontAction) (domain.Preferences, error) {
	args := m.Called(ctx, action)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func newMux(svc *MockShellService) *http.ServeMux {
	h := shellhttp.NewShellHandler(svc)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/shell/navigation", h.Navigation)
	mux.HandleFunc("GET /api/shell/search", h.Search)
	mux.HandleFunc("GET /api/shell/preferences", h.GetPreferences)
	mux.HandleFunc("PUT /api/shell/preferences", h.UpdatePreferences)
	mux.HandleFunc("POST /api/shell/preferences/font-scale", h.AdjustFontScale)
	return mux
}

func serve(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestShellHandler_Search(t *testing.T) {
	svc := new(MockShellService)
	svc.On("Search", "stock").Return([]domain.NavEntry{{Title: "Insumos", Route: "/supplies"}}).Once()

	w := serve(newMux(svc), http.MethodGet, "/api/shell/search?q=stock", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"route":"/supplies"`)
}

func TestShellHandler_Navigation(t *testing.T) {
	svc := new(MockShellService)
	svc.On("Navigation").Return([]domain.NavEntry{{Title: "Agenda", Route: "/agenda"}}).Once()

	w := serve(newMux(svc), http.MethodGet, "/api/shell/navigation", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Agenda"`)
}

func TestShellHandler_GetPreferences(t *testing.T) {
	svc := new(MockShellService)
	svc.On("Preferences", mock.Anything).Return(domain.Preferences{FontScale: 100}, nil).Once()
	svc.On("Preferences", mock.Anything).Return(domain.Preferences{}, errors.New("down")).Once()

	mux := newMux(svc)
	w := serve(mux, http.MethodGet, "/api/shell/preferences", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"font_scale":100,"sidebar_pinned":false}`, w.Body.String())

	w = serve(mux, http.MethodGet, "/api/shell/preferences", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestShellHandler_UpdatePreferences(t *testing.T) {
	svc := new(MockShellService)
	svc.On("UpdatePreferences", mock.Anything, mock.MatchedBy(func(u domain.PreferencesUpdate) bool {
		return u.FontScale != nil && *u.FontScale == 120 && u.SidebarPinned == nil
	})).Return(domain.Preferences{FontScale: 120}, nil).Once()

	w := serve(newMux(svc), http.MethodPut, "/api/shell/preferences", `{"font_scale":120}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"font_scale":120`)
}

func TestShellHandler_UpdatePreferencesOutOfRange(t *testing.T) {
	svc := new(MockShellService)

	w := serve(newMux(svc), http.MethodPut, "/api/shell/preferences", `{"font_scale":200}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "font_scale")
	svc.AssertNotCalled(t, "UpdatePreferences", mock.Anything, mock.Anything)
}

func TestShellHandler_AdjustFontScale(t *testing.T) {
	svc := new(MockShellService)
	svc.On("AdjustFontScale", mock.Anything, domain.FontIncrease).Return(domain.Preferences{FontScale: 110}, nil).Once()

	mux := newMux(svc)
	w := serve(mux, http.MethodPost, "/api/shell/preferences/font-scale", `{"action":"increase"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"font_scale":110`)

	w = serve(mux, http.MethodPost, "/api/shell/preferences/font-scale", `{"action":"zoom"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
