package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_Unmarshal(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": " abc ", "c": null}`), &v))

	assert.Equal(t, ID("42"), v.A)
	assert.Equal(t, ID("abc"), v.B)
	assert.Equal(t, ID(""), v.C)
}

func TestID_Marshal(t *testing.T) {
	out, err := json.Marshal(map[string]ID{"n": "7", "s": "x-1", "e": ""})
	require.NoError(t, err)

	assert.JSONEq(t, `{"n": 7, "s": "x-1", "e": null}`, string(out))
}

func TestDate_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2026-03-01T10:30:00Z"`, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"no_zone", `"2026-03-01T10:30:00"`, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"minutes", `"2026-03-01T10:30"`, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"date_only", `"2026-03-01"`, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"garbage", `"mañana"`, time.Time{}},
		{"null", `null`, time.Time{}},
		{"number", `12`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDate_MarshalZero(t *testing.T) {
	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestQuantity_Unmarshal(t *testing.T) {
	var v struct {
		A Quantity `json:"a"`
		B Quantity `json:"b"`
		C Quantity `json:"c"`
		D Quantity `json:"d"`
		E Quantity `json:"e"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12, "b": "7", "c": null, "d": "n/a", "e": 3.9}`), &v))

	assert.Equal(t, 12, v.A.Int())
	assert.Equal(t, 7, v.B.Int())
	assert.Equal(t, 0, v.C.Int())
	assert.Equal(t, 0, v.D.Int())
	assert.Equal(t, 3, v.E.Int())

	out, err := json.Marshal(v.B)
	require.NoError(t, err)
	assert.Equal(t, "7", string(out))
}
