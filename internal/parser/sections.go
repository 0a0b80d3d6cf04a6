package parser

import (
	"strings"

	"resume-match-go/internal/types"
)

// sectionKeywords 各章节的识别关键词
var sectionKeywords = map[string][]string{
	types.SectionHasSummary:        {"summary", "objective", "profile"},
	types.SectionHasExperience:     {"experience", "employment", "work history"},
	types.SectionHasEducation:      {"education", "academic"},
	types.SectionHasSkills:         {"skills", "technical skills", "competencies"},
	types.SectionHasCertifications: {"certifications", "certificates", "credentials"},
	types.SectionHasProjects:       {"projects", "portfolio"},
}

// identifySections 识别简历章节。返回的映射永远包含全部6个键，
// 未命中时为false
func identifySections(text string) map[string]bool {
	textLower := strings.ToLower(text)
	sections := make(map[string]bool, len(types.AllSectionFlags))
	for _, flag := range types.AllSectionFlags {
		sections[flag] = false
		for _, kw := range sectionKeywords[flag] {
			if strings.Contains(textLower, kw) {
				sections[flag] = true
				break
			}
		}
	}
	return sections
}
