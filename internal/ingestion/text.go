package ingestion

import "strings"

// NormalizeNewlines converts CRLF and bare CR line endings to LF. No other
// cleanup is applied: the extraction heuristics are whitespace-sensitive, so
// decoded text must otherwise reach them untouched.
func NormalizeNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return content
}
