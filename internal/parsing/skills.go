package parsing

import "regexp"

// skillVocabulary is the fixed, ordered list of recognized skill terms.
// Matching is case-insensitive whole-word; output preserves this order, not
// the order of appearance in the text. Equivalent spellings (e.g. "NodeJS")
// are intentionally not normalized.
var skillVocabulary = []string{
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Ruby", "Go", "Rust", "PHP",
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "Spring", "Ruby on Rails",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "SQL", "NoSQL", "PostgreSQL",
	"MySQL", "MongoDB", "AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Git", "Linux",
	"Machine Learning", "Deep Learning", "AI", "Data Science", "DevOps", "Agile", "Scrum",
	"REST API", "GraphQL", "Microservices", "Redux", "HTML", "CSS", "SASS", "LESS",
}

// skillPatterns holds one compiled whole-word pattern per vocabulary entry,
// in vocabulary order.
var skillPatterns = compileSkillPatterns()

func compileSkillPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skillVocabulary))
	for i, skill := range skillVocabulary {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// ExtractSkills returns the vocabulary entries that appear in the text as
// case-insensitive whole-word matches. The result is a subsequence of the
// vocabulary, so duplicates are impossible.
func ExtractSkills(text string) []string {
	found := make([]string, 0)
	for i, pattern := range skillPatterns {
		if pattern.MatchString(text) {
			found = append(found, skillVocabulary[i])
		}
	}
	return found
}
