package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		hint     string
		expected string
	}{
		{
			name:     "First short capitalized line",
			text:     "Jane Doe\nSoftware Engineer\njane@example.com",
			expected: "Jane Doe",
		},
		{
			name:     "Structural hint takes priority",
			text:     "Some Other Line\nMore text",
			hint:     "Jane Doe",
			expected: "Jane Doe",
		},
		{
			name:     "Whitespace-only hint ignored",
			text:     "Jane Doe\nmore",
			hint:     "   ",
			expected: "Jane Doe",
		},
		{
			name:     "Long lines skipped",
			text:     "this line has more than four words in it\nJohn Smith",
			expected: "John Smith",
		},
		{
			name:     "Lowercase leading word skipped",
			text:     "resume of a candidate\nAlice Wonder",
			expected: "Alice Wonder",
		},
		{
			name:     "Blank leading lines ignored",
			text:     "\n\n  \nBob Stone\nmore",
			expected: "Bob Stone",
		},
		{
			name:     "Nothing qualifies",
			text:     "all lowercase here\nanother lowercase line that is long",
			expected: "Unknown",
		},
		{
			name:     "Empty text",
			text:     "",
			expected: "Unknown",
		},
		{
			name:     "Beyond first ten non-empty lines",
			text:     "one line\ntwo line\nthree line\nfour line\nfive line\nsix line\nseven line\neight line\nnine line\nten line\nJane Doe",
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractName(tt.text, tt.hint))
		})
	}
}
