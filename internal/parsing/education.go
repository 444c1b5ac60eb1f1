package parsing

import (
	"regexp"

	"github.com/jonathan/resume-extractor/internal/types"
)

// educationWindow is how far (in bytes) around a degree match to look for an
// institution and dates.
const educationWindow = 100

// degreePatterns cover long-form degree names and abbreviated forms with periods.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(Bachelor|Master|PhD|Doctorate|BSc|BA|MSc|MA|MBA|Doctor|Associate)\s+(?:of|in)?\s+([A-Za-z\s]+)`),
	regexp.MustCompile(`\b(B\.S\.|M\.S\.|B\.A\.|M\.A\.|M\.B\.A\.|Ph\.D\.)\s+(?:of|in)?\s+([A-Za-z\s]+)`),
}

var institutionPattern = regexp.MustCompile(`\b(University|College|Institute|School)\s+of\s+([A-Za-z\s]+)`)

// ExtractEducation finds degree mentions and pairs each with an institution
// found within educationWindow bytes of the match. A degree with no nearby
// institution yields no entry at all. Dates come from a date-proximity search
// over the same window.
func ExtractEducation(text string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)

	for _, pattern := range degreePatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			degree := text[start:end]

			windowStart := max(0, start-educationWindow)
			windowEnd := min(len(text), end+educationWindow)
			window := text[windowStart:windowEnd]

			institution := institutionPattern.FindString(window)
			if institution == "" {
				continue
			}

			entries = append(entries, types.EducationEntry{
				Degree:      degree,
				Institution: institution,
				Dates:       ExtractDatesNear(window),
			})
		}
	}

	return entries
}
