package recommender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/config"
	"resume-match-go/internal/types"
)

func strongRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		Skills: []string{
			"Python", "Go", "Java", "React", "Vue", "SQL", "MySQL",
			"Redis", "Aws", "Docker", "Kubernetes", "Git",
		},
		Experience: []types.ExperienceEntry{
			{Start: "2018", End: "2020"},
			{Start: "2021", End: "present"},
		},
		Certifications:       []string{"AWS Certified"},
		TotalExperienceYears: 7,
		Sections: map[string]bool{
			types.SectionHasSummary:  true,
			types.SectionHasProjects: true,
		},
	}
}

func TestGetRecommendationsNoTriggers(t *testing.T) {
	r := NewRecommender(config.OpenAIConfig{})
	recs := r.GetRecommendations(strongRecord())
	assert.Empty(t, recs, "结构完整的简历不触发任何规则")
}

func TestGetRecommendationsAllTriggers(t *testing.T) {
	r := NewRecommender(config.OpenAIConfig{})
	recs := r.GetRecommendations(&types.ResumeRecord{})

	require.Len(t, recs, 5, "空记录触发全部5条规则")
	categories := make([]string, 0, len(recs))
	for _, rec := range recs {
		categories = append(categories, rec.Category)
	}
	assert.Equal(t, []string{"Skills", "Experience", "Summary", "Projects", "Certifications"},
		categories, "规则按固定顺序产出")
	assert.Equal(t, "High", recs[0].Priority)
	assert.Equal(t, "Low", recs[4].Priority)
}

func TestGetRecommendationsSingleTriggers(t *testing.T) {
	r := NewRecommender(config.OpenAIConfig{})

	rec := strongRecord()
	rec.Skills = rec.Skills[:9]
	recs := r.GetRecommendations(rec)
	require.Len(t, recs, 1, "技能少于10条只触发技能规则")
	assert.Equal(t, "Skills", recs[0].Category)

	rec = strongRecord()
	rec.Experience = rec.Experience[:1]
	recs = r.GetRecommendations(rec)
	require.Len(t, recs, 1)
	assert.Equal(t, "Experience", recs[0].Category)

	rec = strongRecord()
	rec.Certifications = nil
	recs = r.GetRecommendations(rec)
	require.Len(t, recs, 1)
	assert.Equal(t, "Certifications", recs[0].Category)
}

func TestGetDetailedRecommendationsWithoutAPIKey(t *testing.T) {
	r := NewRecommender(config.OpenAIConfig{})
	detailed := r.GetDetailedRecommendations(context.Background(), &types.ResumeRecord{})

	require.NotNil(t, detailed)
	assert.Len(t, detailed.BasicRecommendations, 5)
	assert.Empty(t, detailed.AIRecommendations)
	assert.Equal(t, "Set OPENAI_API_KEY environment variable for AI-powered recommendations",
		detailed.Note)
}

func TestParseAIResponse(t *testing.T) {
	content := `Here are my recommendations:

1. Skills: Add cloud certifications to your skill set
2. Formatting: Use consistent bullet points
- Experience: Quantify your achievements
random line without structure
3. no colon line
`
	recs := parseAIResponse(content)

	require.Len(t, recs, 3, "只保留编号或破折号开头且带冒号的行")
	assert.Equal(t, "Skills", recs[0].Category)
	assert.Equal(t, "Add cloud certifications to your skill set", recs[0].Suggestion)
	assert.Equal(t, "Formatting", recs[1].Category)
	assert.Equal(t, "Experience", recs[2].Category)
}

func TestParseAIResponseEmpty(t *testing.T) {
	assert.Empty(t, parseAIResponse(""))
	assert.Empty(t, parseAIResponse("no structured lines here"))
}

func TestGenerateSummaryTiers(t *testing.T) {
	summary := GenerateSummary(strongRecord())
	assert.Contains(t, summary, "12 identified skills")
	assert.Contains(t, summary, "7 years of experience")
	assert.Contains(t, summary, "solid foundation", "12技能7年落在中间档")

	strong := strongRecord()
	strong.Skills = append(strong.Skills, "Jira", "Figma", "Agile")
	assert.Contains(t, GenerateSummary(strong), "strong technical depth")

	assert.Contains(t, GenerateSummary(&types.ResumeRecord{}), "more detail")
}

func TestGetSkillRecommendationsRoleMatching(t *testing.T) {
	rec := GetSkillRecommendations([]string{"Python", "Git"}, "Senior Software Engineer")

	assert.Equal(t, "Senior Software Engineer", rec.TargetRole)
	assert.NotContains(t, rec.RecommendedSkills, "Python", "已有技能不再推荐")
	assert.NotContains(t, rec.RecommendedSkills, "Git")
	assert.Contains(t, rec.RecommendedSkills, "Docker")
	assert.Equal(t, "High", rec.Priority, "缺口超过5个优先级为High")
}

func TestGetSkillRecommendationsUnknownRole(t *testing.T) {
	rec := GetSkillRecommendations([]string{"Python"}, "Astronaut")

	assert.Empty(t, rec.RecommendedSkills, "未知岗位没有推荐")
	assert.NotNil(t, rec.RecommendedSkills, "切片初始化为空而不是nil")
	assert.Equal(t, "Medium", rec.Priority)
}

func TestGetSkillRecommendationsCaseInsensitive(t *testing.T) {
	rec := GetSkillRecommendations([]string{"python", "AWS", "sql"}, "Data Scientist")

	assert.NotContains(t, rec.RecommendedSkills, "Python", "技能比较大小写不敏感")
	assert.NotContains(t, rec.RecommendedSkills, "SQL")
	assert.Contains(t, rec.RecommendedSkills, "Pandas")
}
