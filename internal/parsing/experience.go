package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

// sectionPatterns isolate the work-history section, in priority order: an
// explicit "Work Experience" header first, then the generic header variants.
// Capture runs until the next recognized section header or end of text.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?ims)^\s*Work Experience(?:\s+[^\n]*?)?\n\s*(.*?)(?:\n^\s*(?:Education|Skills|Projects|Awards|Publications|References|Languages|Contact)\s*\n|\z)`),
	regexp.MustCompile(`(?ims)^\s*(?:Experience|Professional Experience|Employment History|Work History)(?:\s+[^\n]*?)?\n\s*(.*?)(?:\n^\s*(?:Education|Skills|Projects|Awards|Publications|References|Languages|Contact)\s*\n|\z)`),
}

const monthAbbrs = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// dateRangePattern recognizes a job date range: month+year, bare year, or
// quarter+year start, through the same set or an open end (Present/Current/Now).
var dateRangePattern = regexp.MustCompile(`(?i)((?:` + monthAbbrs + `)[a-z]*\.?\s+\d{4}|\d{4}|Q[1-4]\s+\d{4})\s*(?:-|–|to|—)\s*((?:` + monthAbbrs + `)[a-z]*\.?\s+\d{4}|\d{4}|Present|Current|Now|Q[1-4]\s+\d{4})`)

// positionCompanyPattern splits "Position at Company" or "Position, Company".
var positionCompanyPattern = regexp.MustCompile(`(?i)^(.+?)(?:\s+at\s+|\s*,\s*)(.+)`)

// positionAtPattern splits only the "Position at Company" form.
var positionAtPattern = regexp.MustCompile(`(?i)^(.+?)\s+at\s+(.+)`)

// companyMaxWords bounds how long a line can be and still pass as a company name.
const companyMaxWords = 7

// ExtractExperience isolates the work-history section, segments it into
// per-job blocks, and infers position/company/dates/description for each.
// Without a recognized section header it returns no entries at all rather
// than guessing from the rest of the document.
func ExtractExperience(text string) []types.ExperienceEntry {
	section, ok := isolateExperienceSection(text)
	if !ok {
		return []types.ExperienceEntry{}
	}

	entries := make([]types.ExperienceEntry, 0)
	flush := func(block []string) {
		if entry, ok := parseJobBlock(block); ok {
			entries = append(entries, entry)
		}
	}

	lines := strings.Split(section, "\n")
	var block []string
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			// blank line delineates the end of a job's description
			if len(block) > 0 {
				flush(block)
				block = nil
			}
			continue
		}

		block = append(block, stripped)

		// Lookahead: a date range opening the next line signals a new job.
		// Flush the current block if it already carries a date of its own,
		// or if the line just added is not itself the date line.
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if dateRangePattern.MatchString(next) && len(block) > 1 {
				hasEarlierDate := false
				for _, prev := range block[:len(block)-1] {
					if dateRangePattern.MatchString(prev) {
						hasEarlierDate = true
						break
					}
				}
				if hasEarlierDate || !dateRangePattern.MatchString(stripped) {
					flush(block)
					block = nil
				}
			}
		}
	}
	if len(block) > 0 {
		flush(block)
	}

	// Entries where neither position nor company was inferred are too sparse
	// to keep, even when a date range was recovered.
	filtered := make([]types.ExperienceEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Position.Known || entry.Company.Known {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func isolateExperienceSection(text string) (string, bool) {
	for _, pattern := range sectionPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// parseJobBlock infers one experience entry from a block of non-blank lines.
// The second return value is false when the block holds nothing usable.
func parseJobBlock(lines []string) (types.ExperienceEntry, bool) {
	if len(lines) == 0 {
		return types.ExperienceEntry{}, false
	}

	var position, company, dates types.Field
	var description []string

	// Find the first date-bearing line; it anchors the rest of the inference.
	dateLineIdx := -1
	for i, line := range lines {
		loc := dateRangePattern.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		start := strings.TrimSpace(line[loc[2]:loc[3]])
		end := strings.TrimSpace(line[loc[4]:loc[5]])
		dates = types.KnownField(start + " - " + end)
		dateLineIdx = i

		company = companyFromDateLine(line, loc, lines, i)
		break
	}

	switch {
	case dateLineIdx == 0:
		// Date opens the block; a short following line may be the company.
		if !company.Known && len(lines) > 1 && wordCount(lines[1]) < 5 {
			company = types.KnownField(lines[1])
			description = lines[2:]
		} else {
			description = lines[1:]
		}

	case dateLineIdx > 0:
		pre := lines[:dateLineIdx]
		description = lines[dateLineIdx+1:]

		if len(pre) == 1 {
			if pos, comp, ok := splitMatch(positionCompanyPattern, pre[0]); ok {
				position = types.KnownField(pos)
				if !company.Known {
					company = types.KnownField(comp)
				}
			} else {
				position = types.KnownField(pre[0])
			}
		} else {
			position = types.KnownField(pre[0])
			if !company.Known {
				company = types.KnownField(pre[1])
			}
			if pos, comp, ok := splitMatch(positionAtPattern, position.Value); ok {
				position = types.KnownField(pos)
				if !company.Known {
					company = types.KnownField(comp)
				}
			}
		}

	default:
		// No date line; fall back to positional guesses from the top of the block.
		if pos, comp, ok := splitMatch(positionCompanyPattern, lines[0]); ok {
			position = types.KnownField(pos)
			company = types.KnownField(comp)
			if len(lines) > 1 {
				description = lines[1:]
			}
		} else if len(lines) > 1 {
			position = types.KnownField(lines[0])
			if wordCount(lines[1]) < companyMaxWords {
				company = types.KnownField(lines[1])
				if len(lines) > 2 {
					description = lines[2:]
				}
			} else {
				description = lines[1:]
			}
		} else {
			position = types.KnownField(lines[0])
		}
	}

	// A "position" carrying a legal-entity keyword is really a company name.
	if !company.Known && position.Known && containsEntityKeyword(position.Value) {
		company = position
		position = types.Field{}
	}

	if !position.Known && !company.Known && !dates.Known {
		return types.ExperienceEntry{}, false
	}

	return types.ExperienceEntry{
		Position:    trimField(position),
		Company:     trimField(company),
		Dates:       trimField(dates),
		Description: joinDescription(description),
	}, true
}

// companyFromDateLine inspects the text around the date match on the same
// line. The segment before the date (first "|"-delimited part) wins over an
// "at Company" remainder after it.
func companyFromDateLine(line string, loc []int, lines []string, idx int) types.Field {
	var company types.Field

	before := line[:loc[0]]
	if candidate := firstPipeSegment(before); candidate != "" {
		lower := strings.ToLower(candidate)
		repeatsTitle := idx > 0 && strings.EqualFold(candidate, lines[idx-1])
		if wordCount(candidate) < companyMaxWords &&
			!strings.Contains(lower, "experience") && !strings.Contains(lower, "details") &&
			!repeatsTitle {
			company = types.KnownField(candidate)
		}
	}

	after := strings.TrimSpace(strings.Trim(strings.TrimSpace(line[loc[1]:]), " |,-@"))
	after = strings.TrimSpace(strings.TrimPrefix(after, "at "))
	if after != "" && wordCount(after) < companyMaxWords && !company.Known {
		company = types.KnownField(after)
	}

	return company
}

func firstPipeSegment(s string) string {
	for _, part := range strings.Split(strings.TrimSpace(s), "|") {
		if part = strings.TrimSpace(part); part != "" {
			return strings.Trim(part, " ,-@")
		}
	}
	return ""
}

func splitMatch(pattern *regexp.Regexp, line string) (string, string, bool) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

func joinDescription(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(strings.ToLower(line), "keywords:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func containsEntityKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range []string{"inc", "llc", "ltd", "group"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func trimField(f types.Field) types.Field {
	if !f.Known {
		return f
	}
	return types.KnownField(strings.Trim(f.Value, ":, "))
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
