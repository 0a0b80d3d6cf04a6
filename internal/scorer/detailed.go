package scorer

import (
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

// specialCharSuggestions 问题字符到替换建议的映射，按固定顺序报告
var specialCharSuggestions = []types.SpecialCharIssue{
	{Character: "•", Suggestion: "Use hyphens (-) instead"},
	{Character: "◆", Suggestion: "Use asterisks (*) instead"},
	{Character: "★", Suggestion: "Avoid decorative symbols"},
	{Character: "→", Suggestion: "Use \"to\" or \"->\" instead"},
	{Character: "©", Suggestion: "Avoid copyright symbols"},
	{Character: "®", Suggestion: "Avoid copyright symbols"},
	{Character: "™", Suggestion: "Avoid copyright symbols"},
}

var bulletLineRes = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[-*•]\s`),
	regexp.MustCompile(`^\s*\d+\.\s`),
}

// 三种日期书写风格，文档中出现超过一种即视为不一致
var dateFormatRes = []struct {
	name string
	re   *regexp.Regexp
}{
	{"MM/YYYY", regexp.MustCompile(`\d{2}/\d{4}`)},
	{"Month YYYY", regexp.MustCompile(`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`)},
	{"YYYY-YYYY", regexp.MustCompile(`\d{4}\s*[-–]\s*\d{4}`)},
}

// strongActionVerbs 15个强动词清单
var strongActionVerbs = []string{
	"achieved", "improved", "developed", "created", "managed",
	"led", "increased", "reduced", "implemented", "designed",
	"analyzed", "optimized", "streamlined", "launched", "delivered",
}

// 可量化成果的4类数字模式：百分比、金额、"N+"、量级后缀
var achievementRes = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+\+`),
	regexp.MustCompile(`\d+[KMB]`),
}

const achievementExampleLimit = 10

// DetailedAnalysis 在基础评分上追加文件格式建议、特殊字符报告、
// 项目符号统计、日期格式一致性、强动词和可量化成果检查
func (s *ATSScorer) DetailedAnalysis(rec *types.ResumeRecord) *types.DetailedATSReport {
	return &types.DetailedATSReport{
		ATSReport:                *s.Analyze(rec),
		FileFormatCheck:          checkFileFormat(),
		SpecialCharacters:        checkSpecialCharacters(rec.RawText),
		BulletPoints:             checkBulletPoints(rec.RawText),
		DateFormats:              checkDateFormats(rec.RawText),
		ActionVerbs:              checkActionVerbs(rec.RawText),
		QuantifiableAchievements: checkQuantifiableAchievements(rec.RawText),
	}
}

// checkFileFormat 静态的文件格式建议
func checkFileFormat() types.FileFormatCheck {
	return types.FileFormatCheck{
		Recommended: []string{"PDF", "DOCX"},
		Avoid:       []string{"JPG", "PNG", "Pages"},
		Note:        "PDF and DOCX are most ATS-friendly formats",
	}
}

func checkSpecialCharacters(text string) types.SpecialCharReport {
	var found []types.SpecialCharIssue
	for _, issue := range specialCharSuggestions {
		if strings.Contains(text, issue.Character) {
			found = append(found, issue)
		}
	}
	return types.SpecialCharReport{
		Found:  len(found) > 0,
		Issues: found,
	}
}

func checkBulletPoints(text string) types.BulletPointCheck {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		for _, re := range bulletLineRes {
			if re.MatchString(line) {
				count++
				break
			}
		}
	}
	status := "Add more bullet points for better readability"
	if count > 5 {
		status = "Good"
	}
	return types.BulletPointCheck{
		Count:          count,
		Recommendation: "Use simple hyphens (-) or asterisks (*) for bullets",
		Status:         status,
	}
}

func checkDateFormats(text string) types.DateFormatCheck {
	var found []string
	for _, df := range dateFormatRes {
		if df.re.MatchString(text) {
			found = append(found, df.name)
		}
	}
	return types.DateFormatCheck{
		FormatsFound:   found,
		Consistent:     len(found) <= 1,
		Recommendation: "Use consistent date format throughout (e.g., \"Month YYYY\")",
	}
}

func checkActionVerbs(text string) types.ActionVerbCheck {
	textLower := strings.ToLower(text)
	var found []string
	for _, verb := range strongActionVerbs {
		if strings.Contains(textLower, verb) {
			found = append(found, verb)
		}
	}
	status := "Add more action verbs"
	switch {
	case len(found) >= 8:
		status = "Excellent"
	case len(found) >= 5:
		status = "Good"
	}
	return types.ActionVerbCheck{
		Count:  len(found),
		Verbs:  found,
		Status: status,
	}
}

func checkQuantifiableAchievements(text string) types.AchievementCheck {
	var matches []string
	for _, re := range achievementRes {
		matches = append(matches, re.FindAllString(text, -1)...)
	}
	examples := matches
	if len(examples) > achievementExampleLimit {
		examples = examples[:achievementExampleLimit]
	}
	status := "Add more quantifiable achievements"
	switch {
	case len(matches) >= 5:
		status = "Excellent"
	case len(matches) >= 3:
		status = "Good"
	}
	return types.AchievementCheck{
		Count:    len(matches),
		Examples: examples,
		Status:   status,
	}
}
