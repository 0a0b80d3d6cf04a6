package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

func TestAnalyzeSkillGap(t *testing.T) {
	m := NewJobMatcher(nil)
	rec := &types.ResumeRecord{
		Skills: []string{"Python", "Git"},
	}
	gap := m.AnalyzeSkillGap(rec, "Required skills: python, aws, docker")

	require.NotNil(t, gap)
	assert.Equal(t, []string{"python"}, gap.MatchedSkills)
	assert.Equal(t, []string{"aws", "docker"}, gap.Missing.Critical,
		"required措辞附近的缺失技能标为关键")
	assert.Empty(t, gap.Missing.NiceToHave)
	assert.Equal(t, []string{"git"}, gap.ExtraSkills, "简历独有的技能归为多余")
	assert.InDelta(t, 33.33, gap.MatchPercentage, 0.01, "3项要求命中1项")

	require.Len(t, gap.LearningRecommendations, 2)
	assert.Equal(t, "aws", gap.LearningRecommendations[0].Skill)
	assert.Contains(t, gap.LearningRecommendations[0].Resources, "AWS Training")
	assert.Equal(t, "High", gap.LearningRecommendations[0].Priority)
	assert.Contains(t, gap.LearningRecommendations[1].Resources, "Docker")
}

func TestAnalyzeSkillGapNoMissing(t *testing.T) {
	m := NewJobMatcher(nil)
	rec := &types.ResumeRecord{
		Skills: []string{"Python", "Aws"},
	}
	gap := m.AnalyzeSkillGap(rec, "Required: python and aws")

	assert.Equal(t, []string{"aws", "python"}, gap.MatchedSkills)
	assert.Empty(t, gap.Missing.Critical)
	assert.Empty(t, gap.Missing.NiceToHave)
	assert.Equal(t, 100.0, gap.MatchPercentage)
	assert.Empty(t, gap.LearningRecommendations)
}

func TestIdentifyCriticalSkillsKeywordProximity(t *testing.T) {
	critical := identifyCriticalSkills(
		"Python is required for this role.",
		[]string{"python", "docker"},
	)

	// docker没有出现在JD里，和措辞不同段，不会命中
	assert.Equal(t, []string{"python"}, critical)
}

func TestIdentifyCriticalSkillsFallback(t *testing.T) {
	jd := "We use terraform, ansible, puppet and chef daily."
	critical := identifyCriticalSkills(jd, []string{"chef", "puppet", "ansible", "terraform"})

	// 没有任何硬性措辞时按JD出现位置取前3个，输出按字典序
	assert.Equal(t, []string{"ansible", "puppet", "terraform"}, critical)
}

func TestIdentifyCriticalSkillsEmptyMissing(t *testing.T) {
	assert.Empty(t, identifyCriticalSkills("anything required", nil))
}

func TestLearningRecommendationsFallbackResource(t *testing.T) {
	recs := learningRecommendations([]string{"cobol"})

	require.Len(t, recs, 1)
	assert.Equal(t, "cobol", recs[0].Skill)
	assert.Equal(t, "Search online courses and tutorials", recs[0].Resources)
}
