// Package pipeline assembles structured resume records from resume documents.
package pipeline

import (
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/types"
)

// ParseText runs the five extractors over decoded resume text and assembles
// one ResumeRecord. The extractors are independent: each returns an empty or
// sentinel value when it finds nothing, so a miss in one never affects the
// others. The call is pure: identical input yields an identical record.
func ParseText(text, nameHint string) *types.ResumeRecord {
	return &types.ResumeRecord{
		Name:       parsing.ExtractName(text, nameHint),
		Contact:    parsing.ExtractContactInfo(text),
		Skills:     parsing.ExtractSkills(text),
		Education:  parsing.ExtractEducation(text),
		Experience: parsing.ExtractExperience(text),
		RawText:    text,
	}
}

// ParseFile decodes the resume at path and parses it. If text cannot be
// obtained the whole parse aborts with the ingestion error; a record is never
// returned together with an error.
func ParseFile(path string) (*types.ResumeRecord, error) {
	doc, err := ingestion.Extract(path)
	if err != nil {
		return nil, err
	}
	return ParseText(doc.Text, doc.NameHint), nil
}
