// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// NameUnknown is the sentinel returned when no candidate name could be determined.
const NameUnknown = "Unknown"

// fieldNA is the literal marker rendered for unknown fields at the JSON boundary.
const fieldNA = "N/A"

// Field is an inferred resume value that may be unknown. The zero value is
// unknown, which is distinct from a known empty string.
type Field struct {
	Value string
	Known bool
}

// KnownField returns a Field holding a concrete value.
func KnownField(v string) Field {
	return Field{Value: v, Known: true}
}

// Or returns the field value, or fallback when the field is unknown.
func (f Field) Or(fallback string) string {
	if !f.Known {
		return fallback
	}
	return f.Value
}

// String renders the field for human output, using the "N/A" marker when unknown.
func (f Field) String() string {
	return f.Or(fieldNA)
}

// MarshalJSON renders unknown fields as the literal "N/A" for compatibility
// with downstream report consumers.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Or(fieldNA))
}

// UnmarshalJSON maps the "N/A" marker back to an unknown field.
func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == fieldNA {
		*f = Field{}
		return nil
	}
	*f = KnownField(s)
	return nil
}

// ContactInfo holds contact details found in the resume text. Each field is
// present only if a matching pattern was found; only the first match in
// document order is kept per field.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// EducationEntry is a degree with the institution found near it. An entry
// exists only when both a degree and a nearby institution matched.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Dates       string `json:"dates"`
}

// ExperienceEntry is one job inferred from a work-history block. Position,
// company, and dates are unknown when they could not be inferred; an entry is
// retained only if position or company is known.
type ExperienceEntry struct {
	Position    Field  `json:"position"`
	Company     Field  `json:"company"`
	Dates       Field  `json:"dates"`
	Description string `json:"description"`
}

// ResumeRecord is the structured result of parsing one resume document.
// It is assembled once per parse call and not mutated afterwards.
type ResumeRecord struct {
	Name       string            `json:"name"`
	Contact    ContactInfo       `json:"contact_information"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"work_experience"`
	RawText    string            `json:"full_text"`
}
