package agent

import (
	"regexp"
	"strings"
)

// Patterns for tool-call markup the model sometimes leaks into its prose.
// Stripping is purely cosmetic and never touches real tool-use blocks.
var (
	functionCallsRe = regexp.MustCompile(`(?s)<function_calls>.*?</function_calls>`)
	invokeRe        = regexp.MustCompile(`(?s)<invoke[^>]*>.*?</invoke>`)
	parameterRe     = regexp.MustCompile(`(?s)<parameter[^>]*>.*?</parameter>`)
	xmlFenceRe      = regexp.MustCompile("(?s)```xml.*?```")
	blankRunsRe     = regexp.MustCompile(`\n{3,}`)
)

// sanitizeText removes leaked tool-call markup from assistant text.
func sanitizeText(text string) string {
	text = functionCallsRe.ReplaceAllString(text, "")
	text = invokeRe.ReplaceAllString(text, "")
	text = parameterRe.ReplaceAllString(text, "")
	text = xmlFenceRe.ReplaceAllString(text, "")
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
