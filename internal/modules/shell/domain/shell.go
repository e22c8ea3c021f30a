package domain

import "errors"

const (
	DefaultFontScale = 100
	MinFontScale     = 75
	MaxFontScale     = 150
	FontScaleStep    = 10
)

var ErrUnknownFontAction = errors.New("unknown font scale action")

// NavEntry is one routed page of the dashboard.
type NavEntry struct {
	Title    string   `json:"title" yaml:"title"`
	Route    string   `json:"route" yaml:"route"`
	Icon     string   `json:"icon" yaml:"icon"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Preferences is the chrome state the browser used to keep in local storage.
type Preferences struct {
	FontScale     int  `json:"font_scale"`
	SidebarPinned bool `json:"sidebar_pinned"`
}

// PreferencesUpdate changes only the fields that are present.
type PreferencesUpdate struct {
	FontScale     *int  `json:"font_scale" validate:"omitempty,min=75,max=150"`
	SidebarPinned *bool `json:"sidebar_pinned"`
}

type FontAction string

const (
	FontIncrease FontAction = "increase"
	FontDecrease FontAction = "decrease"
	FontReset    FontAction = "reset"
)

// Apply returns the scale after action, clamped to the allowed range.
func (a FontAction) Apply(scale int) (int, error) {
	switch a {
	case FontIncrease:
		scale += FontScaleStep
	case FontDecrease:
		scale -= FontScaleStep
	case FontReset:
		scale = DefaultFontScale
	default:
		return scale, ErrUnknownFontAction
	}
	return ClampFontScale(scale), nil
}

func ClampFontScale(scale int) int {
	if scale < MinFontScale {
		return MinFontScale
	}
	if scale > MaxFontScale {
		return MaxFontScale
	}
	return scale
}
