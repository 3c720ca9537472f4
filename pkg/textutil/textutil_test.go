package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "fits",
			text:     "Log level",
			width:    20,
			expected: []string{"Log level"},
		},
		{
			name:     "wraps on words",
			text:     "Absolute residual norm tolerance for the solver",
			width:    20,
			expected: []string{"Absolute residual", "norm tolerance for", "the solver"},
		},
		{
			name:     "collapses whitespace",
			text:     "  Max   no.\titerations ",
			width:    80,
			expected: []string{"Max no. iterations"},
		},
		{
			name:     "long word on its own line",
			text:     "a supercalifragilistic b",
			width:    5,
			expected: []string{"a", "supercalifragilistic", "b"},
		},
		{
			name:     "exact width",
			text:     "abc def",
			width:    7,
			expected: []string{"abc def"},
		},
		{
			name:     "empty",
			text:     "",
			width:    10,
			expected: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Wrap(tt.text, tt.width))
		})
	}
}
