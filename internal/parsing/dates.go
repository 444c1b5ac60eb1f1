package parsing

import "regexp"

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// datesNearPatterns are tried in fixed priority order: bare year ranges first,
// then month-year ranges, then month-year to an open end.
var datesNearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(20\d{2})\s*[-–—]\s*(20\d{2}|Present|Current|Now)\b`),
	regexp.MustCompile(`\b(` + monthNames + `)\s+20\d{2}\s*[-–—]\s*(` + monthNames + `)\s+20\d{2}\b`),
	regexp.MustCompile(`\b(` + monthNames + `)\s+20\d{2}\s*[-–—]\s*(Present|Current|Now)\b`),
}

// ExtractDatesNear searches a window of text for a date range, returning the
// first whole match found by the highest-priority pattern, or "" if none match.
func ExtractDatesNear(window string) string {
	for _, pattern := range datesNearPatterns {
		if m := pattern.FindString(window); m != "" {
			return m
		}
	}
	return ""
}
