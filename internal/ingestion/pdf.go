package ingestion

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts the plain text of every page of a .pdf resume. PDF text
// layout is flattened by the reader, so no structural name hint is available.
type PDFSource struct{}

// Extract implements Source.
func (PDFSource) Extract(path string) (Document, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return Document{}, &ExtractionError{Format: "pdf", Cause: err}
	}
	defer file.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	return Document{Text: NormalizeNewlines(sb.String())}, nil
}
