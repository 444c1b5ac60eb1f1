package ingestion

import "os"

// PlainTextSource reads .txt resumes verbatim. Plain text carries no
// structural metadata, so it never produces a name hint.
type PlainTextSource struct{}

// Extract implements Source.
func (PlainTextSource) Extract(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &ExtractionError{Format: "txt", Cause: err}
	}
	return Document{Text: NormalizeNewlines(string(data))}, nil
}
