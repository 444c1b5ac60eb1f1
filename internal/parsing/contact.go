// Package parsing provides the heuristic extractors that turn raw resume text
// into structured candidate data.
package parsing

import (
	"regexp"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`\b(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9_-]+`)
)

// ExtractContactInfo scans text for an email address, a phone number, and a
// LinkedIn profile link. Only the first match in document order is kept per
// field; absence of a match leaves the field empty.
func ExtractContactInfo(text string) types.ContactInfo {
	var info types.ContactInfo

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}
	if m := phonePattern.FindString(text); m != "" {
		info.Phone = m
	}
	if m := linkedinPattern.FindString(text); m != "" {
		info.LinkedIn = "https://" + m
	}

	return info
}
