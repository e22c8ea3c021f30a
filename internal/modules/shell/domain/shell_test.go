package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontAction_Apply(t *testing.T) {
	tests := []struct {
		name   string
		action FontAction
		scale  int
		want   int
	}{
		{"increase", FontIncrease, 100, 110},
		{"increase_clamped", FontIncrease, 145, 150},
		{"decrease", FontDecrease, 100, 90},
		{"decrease_clamped", FontDecrease, 80, 75},
		{"reset", FontReset, 140, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.action.Apply(tt.scale)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FontAction("double").Apply(100)
	assert.ErrorIs(t, err, ErrUnknownFontAction)
}

func TestClampFontScale(t *testing.T) {
	assert.Equal(t, 75, ClampFontScale(10))
	assert.Equal(t, 150, ClampFontScale(400))
	assert.Equal(t, 120, ClampFontScale(120))
}
