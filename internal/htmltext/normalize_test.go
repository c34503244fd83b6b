package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "br runs collapse to single newline",
			input:    "first<br><br/><BR >second",
			expected: "first\nsecond",
		},
		{
			name:     "tags stripped",
			input:    "<p>hello <b>world</b></p>",
			expected: "hello world",
		},
		{
			name:     "nbsp becomes space, zwsp removed",
			input:    "a\u00a0b\u200bc",
			expected: "a bc",
		},
		{
			name:     "carriage returns and blank lines dropped",
			input:    "one\r\n\r\n\n  two  \n\n",
			expected: "one\ntwo",
		},
		{
			name:     "lines trimmed",
			input:    "   padded   <br>   text   ",
			expected: "padded\ntext",
		},
		{
			name:     "script content dropped",
			input:    "<p>kept</p><script>var x = 1;</script>",
			expected: "kept",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "malformed markup degrades to text",
			input:    "<div><p>unclosed",
			expected: "unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"single line",
		"line one\nline two",
		"a quote with punctuation, and more.",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing normalized text must be a no-op")
	}
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a<br>b"))
	assert.Nil(t, Lines("  "))
}
