// Package ingestion decodes resume files of supported formats into plain text
// for the heuristic extractors, along with optional structural name hints.
package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// Document is decoded resume text plus optional structural metadata. NameHint
// is non-empty only for formats that carry rich structure (font sizes, tags)
// and is used solely to improve name detection.
type Document struct {
	Text     string
	NameHint string
}

// Source decodes one resume file format into a Document.
type Source interface {
	Extract(path string) (Document, error)
}

// ForPath selects the Source for a file by its extension. An unrecognized
// extension is an error, never a silent fallback.
func ForPath(path string) (Source, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return PlainTextSource{}, nil
	case ".pdf":
		return PDFSource{}, nil
	case ".docx":
		return DocxSource{}, nil
	case ".html", ".htm":
		return HTMLSource{}, nil
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
}

// Extract decodes the resume at path, failing fast when the file is missing
// or its format is unsupported.
func Extract(path string) (Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Document{}, &NotFoundError{Path: path}
	}

	source, err := ForPath(path)
	if err != nil {
		return Document{}, err
	}

	return source.Extract(path)
}

// SupportedExtensions lists the file extensions Extract understands.
func SupportedExtensions() []string {
	return []string{".txt", ".pdf", ".docx", ".html", ".htm"}
}
