package scorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

func TestDetailedAnalysisComposition(t *testing.T) {
	s := NewATSScorer()
	report := s.DetailedAnalysis(fullRecord())

	require.NotNil(t, report)
	assert.NotZero(t, report.OverallScore, "内嵌基础报告应已填充")
	assert.Equal(t, []string{"PDF", "DOCX"}, report.FileFormatCheck.Recommended)
	assert.Contains(t, report.FileFormatCheck.Avoid, "Pages")
}

func TestCheckSpecialCharacters(t *testing.T) {
	report := checkSpecialCharacters("clean text")
	assert.False(t, report.Found)
	assert.Empty(t, report.Issues)

	report = checkSpecialCharacters("• item → next")
	assert.True(t, report.Found)
	require.Len(t, report.Issues, 2)
	assert.Equal(t, "•", report.Issues[0].Character, "问题字符按固定顺序报告")
	assert.Equal(t, "→", report.Issues[1].Character)
}

func TestCheckBulletPoints(t *testing.T) {
	few := "- one\n- two\ntext"
	report := checkBulletPoints(few)
	assert.Equal(t, 2, report.Count)
	assert.NotEqual(t, "Good", report.Status, "5个以下不算充分")

	many := strings.Repeat("- item\n", 6) + "1. numbered\n"
	report = checkBulletPoints(many)
	assert.Equal(t, 7, report.Count, "连字符和编号列表都计数")
	assert.Equal(t, "Good", report.Status)
}

func TestCheckDateFormats(t *testing.T) {
	report := checkDateFormats("Jan 2020 worked at Acme, Feb 2021 moved on")
	assert.Equal(t, []string{"Month YYYY"}, report.FormatsFound)
	assert.True(t, report.Consistent, "单一格式视为一致")

	report = checkDateFormats("01/2020 then Jan 2021 then 2019-2020")
	assert.Len(t, report.FormatsFound, 3)
	assert.False(t, report.Consistent, "多种格式混用视为不一致")

	report = checkDateFormats("no dates at all")
	assert.Empty(t, report.FormatsFound)
	assert.True(t, report.Consistent)
}

func TestCheckActionVerbs(t *testing.T) {
	report := checkActionVerbs("nothing interesting here")
	assert.Zero(t, report.Count)
	assert.Equal(t, "Add more action verbs", report.Status)

	report = checkActionVerbs("achieved improved developed created managed")
	assert.Equal(t, 5, report.Count)
	assert.Equal(t, "Good", report.Status)

	report = checkActionVerbs("achieved improved developed created managed led increased reduced")
	assert.Equal(t, 8, report.Count)
	assert.Equal(t, "Excellent", report.Status)
	assert.Contains(t, report.Verbs, "led")
}

func TestCheckQuantifiableAchievements(t *testing.T) {
	report := checkQuantifiableAchievements("just words")
	assert.Zero(t, report.Count)
	assert.Equal(t, "Add more quantifiable achievements", report.Status)

	report = checkQuantifiableAchievements("grew 20% and saved $500 and served 10+ clients")
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, "Good", report.Status)
	assert.Contains(t, report.Examples, "20%")
	assert.Contains(t, report.Examples, "$500")

	report = checkQuantifiableAchievements("10% 20% 30% 40% $100 processed 5M rows")
	assert.GreaterOrEqual(t, report.Count, 5)
	assert.Equal(t, "Excellent", report.Status)
	assert.LessOrEqual(t, len(report.Examples), 10, "示例最多10个")
}

func TestDetailedAnalysisJSONShape(t *testing.T) {
	s := NewATSScorer()
	report := s.DetailedAnalysis(&types.ResumeRecord{RawText: "- achieved 20% growth in Jan 2020."})

	assert.True(t, report.DateFormats.Consistent)
	assert.Equal(t, 1, report.BulletPoints.Count)
	assert.Equal(t, 1, report.ActionVerbs.Count)
	assert.GreaterOrEqual(t, report.QuantifiableAchievements.Count, 1)
}
