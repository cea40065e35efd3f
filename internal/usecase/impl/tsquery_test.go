package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTSQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "single term",
			query:    "mikkeller",
			expected: "mikkeller:*",
		},
		{
			name:     "two plain terms",
			query:    "test beer",
			expected: "test:* <-> beer:*",
		},
		{
			name:     "hyphenated pair stays one term",
			query:    "test-beer",
			expected: "test-beer:*",
		},
		{
			name:     "comment characters between terms",
			query:    `test "'/#-- beer`,
			expected: "test:* <-> beer:*",
		},
		{
			name:     "multiply hyphenated term",
			query:    "another-test-beer",
			expected: "another-test-beer:*",
		},
		{
			name:     "hyphens around punctuation collapse",
			query:    "test-?-",
			expected: "test-:*",
		},
		{
			name:     "multiple terms chain in order",
			query:    "russian river pliny",
			expected: "russian:* <-> river:* <-> pliny:*",
		},
		{
			name:     "punctuation is stripped",
			query:    "pliny! the?? (elder)",
			expected: "pliny:* <-> the:* <-> elder:*",
		},
		{
			name:     "tsquery operators cannot be injected",
			query:    "stone & !ipa | 'stout'",
			expected: "stone:* <-> ipa:* <-> stout:*",
		},
		{
			name:     "hyphenated term keeps its hyphen",
			query:    "dry-hopped",
			expected: "dry-hopped:*",
		},
		{
			name:     "double hyphen splits the term",
			query:    "test--beer",
			expected: "test-:* <-> beer:*",
		},
		{
			name:     "trailing double hyphen",
			query:    "test--",
			expected: "test-:*",
		},
		{
			name:     "extra whitespace is ignored",
			query:    "  weihenstephaner   vitus  ",
			expected: "weihenstephaner:* <-> vitus:*",
		},
		{
			name:     "empty input",
			query:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			query:    "!?&|'()",
			expected: "",
		},
		{
			name:     "only whitespace",
			query:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeTSQuery(tt.query))
		})
	}
}
