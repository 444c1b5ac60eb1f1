package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-extractor/internal/types"
)

// nameScanLines is how many non-empty leading lines to consider for a name.
const nameScanLines = 10

// nameMaxWords is the longest line still plausible as a candidate name.
const nameMaxWords = 4

// ExtractName picks the candidate name. A structural hint from the document
// source (large-font paragraph, HTML title or heading) takes priority; when no
// hint is available, the first short capitalized line near the top of the text
// wins. Returns the "Unknown" sentinel when nothing qualifies.
func ExtractName(text, hint string) string {
	if trimmed := strings.TrimSpace(hint); trimmed != "" {
		return trimmed
	}

	seen := 0
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameScanLines {
			break
		}

		words := strings.Fields(line)
		if len(words) == 0 || len(words) > nameMaxWords {
			continue
		}
		if first := []rune(words[0]); unicode.IsUpper(first[0]) {
			return line
		}
	}

	return types.NameUnknown
}
