package ingestion

import "fmt"

// NotFoundError indicates the resume file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// UnsupportedFormatError indicates the file extension maps to no known format.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// ExtractionError indicates a format adapter could not decode the document.
type ExtractionError struct {
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s document", e.Format)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
