package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "The funnel has 12 qualified leads.",
			want: "The funnel has 12 qualified leads.",
		},
		{
			name: "function_calls block stripped",
			in:   "Checking now.\n<function_calls>\n<invoke name=\"lead_search\">\n</invoke>\n</function_calls>\nDone.",
			want: "Checking now.\n\nDone.",
		},
		{
			name: "stray invoke and parameter tags stripped",
			in:   "Before <invoke name=\"x\">body</invoke> middle <parameter name=\"y\">3</parameter> after",
			want: "Before  middle  after",
		},
		{
			name: "fenced xml stripped",
			in:   "Result:\n```xml\n<tool>stuff</tool>\n```\nSummary.",
			want: "Result:\n\nSummary.",
		},
		{
			name: "whitespace trimmed",
			in:   "\n\n  text  \n",
			want: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeText(tt.in))
		})
	}
}
