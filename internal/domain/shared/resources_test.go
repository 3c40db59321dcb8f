package shared_test

import (
	"testing"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestMeter_Set(t *testing.T) {
	tests := []struct {
		name  string
		meter shared.Meter
		value int
		want  int
	}{
		{name: "within range", meter: shared.Meter{Max: 10}, value: 4, want: 4},
		{name: "above max clamps", meter: shared.Meter{Max: 10}, value: 14, want: 10},
		{name: "negative clamps to zero", meter: shared.Meter{Value: 3, Max: 10}, value: -2, want: 0},
		{name: "zero max", meter: shared.Meter{}, value: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.meter.Set(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, tt.meter.Value)
		})
	}
}

func TestMeter_Spend(t *testing.T) {
	m := shared.Meter{Value: 2, Max: 5}

	assert.True(t, m.Spend(1))
	assert.Equal(t, 1, m.Value)
	assert.False(t, m.Spend(2))
	assert.Equal(t, 1, m.Value)
	assert.False(t, m.Spend(-1))
}

func TestMeter_Gain(t *testing.T) {
	m := shared.Meter{Value: 3, Max: 5}

	assert.Equal(t, 2, m.Gain(4))
	assert.Equal(t, 5, m.Value)
	assert.Equal(t, 0, m.Gain(1))
}

func TestScale_Set(t *testing.T) {
	s := shared.Scale{Min: -6, Max: 6}

	assert.Equal(t, -6, s.Set(-9))
	assert.Equal(t, 3, s.Set(3))
	assert.Equal(t, 6, s.Set(12))
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		in   string
		want shared.Attribute
		ok   bool
	}{
		{in: "agl", want: shared.AttributeAgility, ok: true},
		{in: "BOD", want: shared.AttributeBody, ok: true},
		{in: "Astúcia", want: shared.AttributeCunning, ok: true},
		{in: "str", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := shared.ParseAttribute(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
