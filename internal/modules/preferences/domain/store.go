package domain

import (
	"context"
	"errors"
)

// Keys and sets kept by the dashboard.
const (
	KeyFontScale      = "font_scale"
	KeySidebarPinned  = "sidebar_pinned"
	SetAlertedInsumos = "insumos_alertados"
)

var ErrUnknownBackend = errors.New("unknown preferences backend")

// Store is a tiny key-value store with string sets, the server-side stand-in
// for the browser's local storage.
type Store interface {
	// Get reports ok=false when key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Members(ctx context.Context, set string) ([]string, error)
	// Replace swaps the whole content of set atomically.
	Replace(ctx context.Context, set string, members []string) error
}
