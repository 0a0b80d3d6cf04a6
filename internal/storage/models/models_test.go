package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

func sampleRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		RawText: "John Doe, Python developer",
		ContactInfo: types.ContactInfo{
			Email: "john@example.com",
			Phone: "555-123-4567",
		},
		Skills: []string{"Python", "Go"},
		SkillCategories: map[types.SkillCategory][]string{
			types.CategoryProgramming: {"Python", "Go"},
		},
		Experience: []types.ExperienceEntry{
			{Start: "2018", End: "2020", Context: "Acme Corp"},
		},
		Education:            []string{"Bachelor of Science"},
		Certifications:       []string{"AWS Certified"},
		TotalExperienceYears: 5,
		Keywords:             []string{"python", "go"},
		Sections: map[string]bool{
			types.SectionHasSummary: true,
			types.SectionHasSkills:  true,
		},
		SearchLinks: []types.SearchLink{
			{Label: "Jobs", URL: "https://www.google.com/search?q=jobs"},
		},
	}
}

func TestNewResumeModelAndToRecordRoundTrip(t *testing.T) {
	rec := sampleRecord()
	model, err := NewResumeModel(rec, "resume.pdf", "d41d8cd98f00b204e9800998ecf8427e", "resume/uuid/original.pdf", "ANALYZED")
	require.NoError(t, err)
	require.NotNil(t, model)

	assert.Equal(t, "resume.pdf", model.Filename)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", model.RawFileMD5)
	assert.Equal(t, "resume/uuid/original.pdf", model.OriginalFilePath)
	assert.Equal(t, "ANALYZED", model.Status)
	assert.Equal(t, 5, model.TotalExperience)

	restored := model.ToRecord()
	assert.Equal(t, rec.RawText, restored.RawText)
	assert.Equal(t, rec.ContactInfo, restored.ContactInfo)
	assert.Equal(t, rec.Skills, restored.Skills)
	assert.Equal(t, rec.SkillCategories, restored.SkillCategories)
	assert.Equal(t, rec.Experience, restored.Experience)
	assert.Equal(t, rec.Education, restored.Education)
	assert.Equal(t, rec.Certifications, restored.Certifications)
	assert.Equal(t, rec.TotalExperienceYears, restored.TotalExperienceYears)
	assert.Equal(t, rec.Keywords, restored.Keywords)
	assert.Equal(t, rec.Sections, restored.Sections)
	assert.Equal(t, rec.SearchLinks, restored.SearchLinks)
}

func TestToRecordTolerantOfBrokenColumns(t *testing.T) {
	model := &Resume{
		RawText:         "text",
		TotalExperience: 2,
		Skills:          []byte("{not valid json"),
	}

	rec := model.ToRecord()
	require.NotNil(t, rec, "单列损坏不拖垮整行")
	assert.Equal(t, "text", rec.RawText)
	assert.Equal(t, 2, rec.TotalExperienceYears)
	assert.Empty(t, rec.Skills)
}

func TestNewJobMatchModelAndToHistoryEntry(t *testing.T) {
	result := &types.MatchResult{
		OverallScore:        72.5,
		SimilarityScore:     61.25,
		SkillMatchPct:       50,
		ExperienceMatch:     100,
		MatchedSkills:       []string{"python"},
		MissingSkills:       []string{"aws"},
		RequiredExperience:  3,
		CandidateExperience: 5,
		Recommendation:      "Good match. Consider applying and highlighting relevant skills.",
	}

	model, err := NewJobMatchModel(42, "Required: python, aws", result)
	require.NoError(t, err)
	assert.Equal(t, uint(42), model.ResumeID)
	assert.Equal(t, 72.5, model.OverallScore)
	assert.Equal(t, 50.0, model.SkillMatchPercentage)

	entry := model.ToHistoryEntry()
	assert.Equal(t, uint(42), entry.ResumeID)
	assert.Equal(t, "Required: python, aws", entry.JobDescription)
	assert.Equal(t, *result, entry.Result, "转回历史记录不丢失任何字段")
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "resumes", Resume{}.TableName())
	assert.Equal(t, "job_matches", JobMatch{}.TableName())
	assert.Equal(t, "analytics_events", AnalyticsEvent{}.TableName())
}
