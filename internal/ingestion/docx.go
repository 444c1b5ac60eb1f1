package ingestion

import (
	"strings"

	"baliance.com/gooxml/document"
)

// baselineHalfPoints is the 12-point body-text baseline in half-points, the
// unit OOXML stores run sizes in. A paragraph set larger than this near the
// top of the document is treated as a display name.
const baselineHalfPoints = 24

// hintParagraphs is how many leading paragraphs to inspect for a name hint.
const hintParagraphs = 10

// hintMaxWords is the longest paragraph still plausible as a name.
const hintMaxWords = 4

// DocxSource extracts paragraph text from .docx resumes and derives a name
// hint from per-paragraph font metadata.
type DocxSource struct{}

// Extract implements Source.
func (DocxSource) Extract(path string) (Document, error) {
	doc, err := document.Open(path)
	if err != nil {
		return Document{}, &ExtractionError{Format: "docx", Cause: err}
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}

	return Document{
		Text:     NormalizeNewlines(sb.String()),
		NameHint: docxNameHint(doc),
	}, nil
}

// docxNameHint returns the first short leading paragraph rendered above the
// body-text baseline, or "" when none qualifies.
func docxNameHint(doc *document.Document) string {
	paras := doc.Paragraphs()
	if len(paras) > hintParagraphs {
		paras = paras[:hintParagraphs]
	}

	for _, para := range paras {
		var text strings.Builder
		large := false
		for _, run := range para.Runs() {
			text.WriteString(run.Text())
			if size, ok := runSizeHalfPoints(run); ok && size > baselineHalfPoints {
				large = true
			}
		}

		candidate := strings.TrimSpace(text.String())
		if candidate == "" || len(strings.Fields(candidate)) > hintMaxWords {
			continue
		}
		if large {
			return candidate
		}
	}

	return ""
}

// runSizeHalfPoints reads the explicit font size of a run, when one is set.
func runSizeHalfPoints(run document.Run) (uint64, bool) {
	rpr := run.X().RPr
	if rpr == nil || rpr.Sz == nil || rpr.Sz.ValAttr.ST_UnsignedDecimalNumber == nil {
		return 0, false
	}
	return *rpr.Sz.ValAttr.ST_UnsignedDecimalNumber, true
}
