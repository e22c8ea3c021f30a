package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/preferences/infrastructure/memory"
	"github.com/unilab/labdash/internal/modules/shell/domain"
	"github.com/unilab/labdash/internal/modules/shell/infrastructure/navindex"
)

func newService(t *testing.T) (*ShellService, *memory.Store) {
	t.Helper()
	index, err := navindex.Load()
	require.NoError(t, err)
	prefs := memory.NewStore()
	return NewShellService(index, prefs, nil), prefs
}

func routes(entries []domain.NavEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Route)
	}
	return out
}

func TestShellService_Search(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "  ", []string{}},
		{"title", "docentes", []string{"/docentes"}},
		{"keyword_accent_insensitive", "DEVOLUCIÓN", []string{"/MovimientosdeInventario"}},
		{"shared_keyword_in_index_order", "reservas", []string{"/solicitudes", "/agenda"}},
		{"every_word_must_match", "directorio estudiantes", []string{"/alumnos"}},
		{"no_match", "cafeteria", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routes(svc.Search(tt.query)))
		})
	}
}

func TestShellService_NavigationIsACopy(t *testing.T) {
	svc, _ := newService(t)
	nav := svc.Navigation()
	nav[0].Title = "changed"
	assert.Equal(t, "Dashboard", svc.Navigation()[0].Title)
}

func TestShellService_PreferencesDefaults(t *testing.T) {
	svc, prefs := newService(t)

	p, err := svc.Preferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{FontScale: 100, SidebarPinned: false}, p)

	require.NoError(t, prefs.Set(context.Background(), "font_scale", "garbage"))
	p, err = svc.Preferences(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100, p.FontScale)
}

func TestShellService_UpdatePreferences(t *testing.T) {
	svc, _ := newService(t)
	scale, pinned := 130, true

	p, err := svc.UpdatePreferences(context.Background(), domain.PreferencesUpdate{FontScale: &scale, SidebarPinned: &pinned})
	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{FontScale: 130, SidebarPinned: true}, p)

	// partial update keeps the other field
	unpinned := false
	p, err = svc.UpdatePreferences(context.Background(), domain.PreferencesUpdate{SidebarPinned: &unpinned})
	require.NoError(t, err)
	assert.Equal(t, domain.Preferences{FontScale: 130, SidebarPinned: false}, p)
}

func TestShellService_AdjustFontScale(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.AdjustFontScale(ctx, domain.FontIncrease)
	require.NoError(t, err)
	assert.Equal(t, 110, p.FontScale)

	for i := 0; i < 10; i++ {
		p, err = svc.AdjustFontScale(ctx, domain.FontDecrease)
		require.NoError(t, err)
	}
	assert.Equal(t, 75, p.FontScale)

	p, err = svc.AdjustFontScale(ctx, domain.FontReset)
	require.NoError(t, err)
	assert.Equal(t, 100, p.FontScale)

	_, err = svc.AdjustFontScale(ctx, "zoom")
	assert.ErrorIs(t, err, domain.ErrUnknownFontAction)
}

type brokenPrefs struct{ *memory.Store }

func (brokenPrefs) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("redis down")
}

func TestShellService_PreferencesStoreError(t *testing.T) {
	svc := NewShellService(nil, brokenPrefs{memory.NewStore()}, nil)

	_, err := svc.Preferences(context.Background())
	assert.Error(t, err)
}
