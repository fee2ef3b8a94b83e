package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis",
			input:    "We build **open source** tools.",
			contains: []string{"<strong>open source</strong>"},
		},
		{
			name:        "script is stripped",
			input:       "hello <script>alert(1)</script>",
			contains:    []string{"hello"},
			notContains: []string{"<script"},
		},
		{
			name:     "links get nofollow",
			input:    "[site](https://example.com)",
			contains: []string{`href="https://example.com"`, `rel="nofollow`},
		},
		{
			name:        "javascript links are dropped",
			input:       "[x](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}

	out, err := r.Render("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
