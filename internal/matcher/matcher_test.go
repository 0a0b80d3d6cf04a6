package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

func TestMatchCanonicalScenario(t *testing.T) {
	m := NewJobMatcher(nil)
	rec := &types.ResumeRecord{
		RawText:              "Python developer with backend experience",
		Skills:               []string{"Python"},
		TotalExperienceYears: 1,
	}
	result := m.Match(rec, "Required: Python, AWS, 3+ years experience")

	require.NotNil(t, result)
	assert.Equal(t, 3, result.RequiredExperience, "应解析出3年经验要求")
	assert.Equal(t, 1, result.CandidateExperience)
	assert.Equal(t, 50.0, result.SkillMatchPct, "两项要求技能命中一项")
	assert.InDelta(t, 33.33, result.ExperienceMatch, 0.01, "1年对3年按比例折算")
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"aws"}, result.MissingSkills)

	expected := result.SimilarityScore*0.4 + result.SkillMatchPct*0.4 + result.ExperienceMatch*0.2
	assert.InDelta(t, expected, result.OverallScore, 0.05, "综合分是三项加权和")
	assert.NotEmpty(t, result.Recommendation)
}

func TestMatchNoJobSkills(t *testing.T) {
	m := NewJobMatcher(nil)
	rec := &types.ResumeRecord{RawText: "text", Skills: []string{"Python"}}
	result := m.Match(rec, "一份没有任何技术词的描述")

	assert.Zero(t, result.SkillMatchPct, "JD没有技能要求时匹配率为0")
	assert.Empty(t, result.MatchedSkills)
	assert.NotNil(t, result.MatchedSkills, "切片初始化为空而不是nil")
	assert.Equal(t, 100.0, result.ExperienceMatch, "没有年限要求算满分")
}

func TestCalculateExperienceMatch(t *testing.T) {
	assert.Equal(t, 100.0, calculateExperienceMatch(0, 0), "无要求满分")
	assert.Equal(t, 100.0, calculateExperienceMatch(5, 3), "达标满分")
	assert.InDelta(t, 33.33, calculateExperienceMatch(1, 3), 0.01)
	assert.Equal(t, 0.0, calculateExperienceMatch(0, 5))
}

func TestRecommendationTiers(t *testing.T) {
	assert.Contains(t, recommendationFor(85), "Excellent match")
	assert.Contains(t, recommendationFor(80), "Excellent match")
	assert.Contains(t, recommendationFor(60), "Good match")
	assert.Contains(t, recommendationFor(40), "Moderate match")
	assert.Contains(t, recommendationFor(39.9), "Low match")
}

func TestExtractJobSkillsFiltersNoise(t *testing.T) {
	skills := extractJobSkills("Required: Python, AWS, 3+ years experience")

	assert.Equal(t, []string{"aws", "python"}, skills,
		"填充词required/years/experience不计入技能")
}

func TestExtractJobSkillsPatternsAndLines(t *testing.T) {
	jd := "We build services in Go and React on Kubernetes.\n" +
		"Must have: terraform proficiency"
	skills := extractJobSkills(jd)

	assert.Contains(t, skills, "go")
	assert.Contains(t, skills, "react")
	assert.Contains(t, skills, "kubernetes")
	assert.Contains(t, skills, "terraform", "要求行里的零散词条也收进来")
	assert.NotContains(t, skills, "proficiency")
	assert.True(t, sortedStrings(skills), "输出必须有序")
}

func TestExtractRequiredExperience(t *testing.T) {
	assert.Equal(t, 3, extractRequiredExperience("3+ years experience"))
	assert.Equal(t, 5, extractRequiredExperience("minimum of 5 years in backend"))
	assert.Equal(t, 4, extractRequiredExperience("at least 4 years"))
	assert.Equal(t, 7, extractRequiredExperience("3 years experience, minimum 7 years with Java"),
		"多处表述取最大值")
	assert.Zero(t, extractRequiredExperience("no experience requirement"))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
