package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomID_Encode(t *testing.T) {
	tests := []struct {
		name     string
		customID *CustomID
		expected string
		wantErr  bool
	}{
		{
			name:     "domain and action",
			customID: &CustomID{Domain: "sheet", Action: "show"},
			expected: "sheet:show",
		},
		{
			name:     "with target",
			customID: &CustomID{Domain: "move", Action: "adjust", Target: "rec-1"},
			expected: "move:adjust:rec-1",
		},
		{
			name:     "with args",
			customID: &CustomID{Domain: "move", Action: "reroll", Target: "rec-1", Args: []string{"momentum"}},
			expected: "move:reroll:rec-1:momentum",
		},
		{
			name:     "missing action",
			customID: &CustomID{Domain: "move"},
			wantErr:  true,
		},
		{
			name:     "separator inside a part",
			customID: &CustomID{Domain: "move", Action: "reroll", Target: "a:b"},
			wantErr:  true,
		},
		{
			name:     "exceeds max length",
			customID: &CustomID{Domain: "move", Action: "reroll", Target: strings.Repeat("x", 100)},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.customID.Encode()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCustomID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *CustomID
		wantErr bool
	}{
		{
			name:  "reroll button",
			input: "move:reroll:rec-1:fireWill",
			want:  &CustomID{Domain: "move", Action: "reroll", Target: "rec-1", Args: []string{"fireWill"}},
		},
		{
			name:  "adjust modal",
			input: "move:adjust:rec-1",
			want:  &CustomID{Domain: "move", Action: "adjust", Target: "rec-1"},
		},
		{
			name:  "domain and action only",
			input: "world:show",
			want:  &CustomID{Domain: "world", Action: "show"},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "domain only", input: "move", wantErr: true},
		{name: "empty action", input: "move::rec-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCustomID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomIDBuilder_RoundTrip(t *testing.T) {
	b := NewCustomIDBuilder("move")

	id := b.Button("reroll", "rec-9", "free")
	assert.Equal(t, "move:reroll:rec-9:free", id)

	parsed, err := ParseCustomID(id)
	require.NoError(t, err)
	assert.Equal(t, "rec-9", parsed.Target)
	assert.Equal(t, "free", parsed.Arg(0))
	assert.Empty(t, parsed.Arg(1))

	assert.Equal(t, "move:adjust:rec-9", b.Modal("adjust", "rec-9"))
}
