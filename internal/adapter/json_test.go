package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "array puro",
			input: `[{"keyword":"car wash"}]`,
			want:  `[{"keyword":"car wash"}]`,
		},
		{
			name:  "cerca json",
			input: "```json\n[{\"keyword\":\"car wash\"}]\n```",
			want:  `[{"keyword":"car wash"}]`,
		},
		{
			name:  "cerca sem linguagem",
			input: "```\n{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "texto antes e depois",
			input: "Here you go:\n[1,2,3]\nHope it helps!",
			want:  `[1,2,3]`,
		},
		{
			name:  "sem json",
			input: "  sorry, I can't help  ",
			want:  "sorry, I can't help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.input))
		})
	}
}
