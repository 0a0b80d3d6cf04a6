package scorer

import (
	"math"
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

// 五项类别的权重，合计1.0
const (
	weightFormatting  = 0.25
	weightKeywords    = 0.30
	weightSections    = 0.20
	weightReadability = 0.15
	weightContactInfo = 0.10
)

// ATSScorer 计算简历的ATS兼容性评分。纯函数、确定性，
// 同一份ResumeRecord算多少次结果都一样。
type ATSScorer struct{}

// NewATSScorer 创建ATS评分器
func NewATSScorer() *ATSScorer {
	return &ATSScorer{}
}

// problematicGlyphs ATS解析不了的装饰性字符
var problematicGlyphs = []string{"•", "◆", "★", "→", "©", "®", "™"}

var (
	pipeTableRe  = regexp.MustCompile(`\|.*\|.*\|`)
	multiSpaceRe = regexp.MustCompile(` {3,}`)
)

// Analyze 计算五项类别分、加权总分、等级、问题清单和改进建议
func (s *ATSScorer) Analyze(rec *types.ResumeRecord) *types.ATSReport {
	scores := map[string]float64{
		types.ATSCategoryFormatting:  s.checkFormatting(rec.RawText),
		types.ATSCategoryKeywords:    s.checkKeywords(rec),
		types.ATSCategorySections:    s.checkSections(rec),
		types.ATSCategoryReadability: s.checkReadability(rec.RawText),
		types.ATSCategoryContactInfo: s.checkContactInfo(rec),
	}

	overall := scores[types.ATSCategoryFormatting]*weightFormatting +
		scores[types.ATSCategoryKeywords]*weightKeywords +
		scores[types.ATSCategorySections]*weightSections +
		scores[types.ATSCategoryReadability]*weightReadability +
		scores[types.ATSCategoryContactInfo]*weightContactInfo

	return &types.ATSReport{
		OverallScore:    round2(overall),
		CategoryScores:  scores,
		Grade:           gradeFor(overall),
		Issues:          identifyIssues(scores),
		Recommendations: atsRecommendations(scores),
	}
}

// checkFormatting 格式兼容性：从100起扣，问题字符-15、管道表格-10、
// 连续空格-10，下限0
func (s *ATSScorer) checkFormatting(text string) float64 {
	score := 100.0
	for _, glyph := range problematicGlyphs {
		if strings.Contains(text, glyph) {
			score -= 15
			break
		}
	}
	if pipeTableRe.MatchString(text) {
		score -= 10
	}
	if multiSpaceRe.MatchString(text) {
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	return score
}

// checkKeywords 关键词优化程度：技能数和关键词数双阈值分档
func (s *ATSScorer) checkKeywords(rec *types.ResumeRecord) float64 {
	skillCount := len(rec.Skills)
	keywordCount := len(rec.Keywords)
	switch {
	case skillCount >= 15 && keywordCount >= 15:
		return 100
	case skillCount >= 10 && keywordCount >= 10:
		return 80
	case skillCount >= 5 && keywordCount >= 5:
		return 60
	default:
		return 40
	}
}

// checkSections 标准章节覆盖率，没有任何章节标志定义时给保底50
func (s *ATSScorer) checkSections(rec *types.ResumeRecord) float64 {
	if len(rec.Sections) == 0 {
		return 50
	}
	present := 0
	for _, has := range rec.Sections {
		if has {
			present++
		}
	}
	return float64(present) / float64(len(rec.Sections)) * 100
}

// checkReadability 可读性分档：Flesch阅读容易度落在[60,70]最佳。
// 空文本或无法评分时给中性的50。
func (s *ATSScorer) checkReadability(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 50
	}
	ease, ok := fleschReadingEase(text)
	if !ok {
		return 50
	}
	switch {
	case ease >= 60 && ease <= 70:
		return 100
	case ease >= 50 && ease <= 80:
		return 85
	case ease >= 40 && ease <= 90:
		return 70
	default:
		return 50
	}
}

// checkContactInfo 联系方式完整度：邮箱40、电话30、LinkedIn和GitHub各15
func (s *ATSScorer) checkContactInfo(rec *types.ResumeRecord) float64 {
	score := 0.0
	if rec.ContactInfo.Email != "" {
		score += 40
	}
	if rec.ContactInfo.Phone != "" {
		score += 30
	}
	if rec.ContactInfo.LinkedIn != "" {
		score += 15
	}
	if rec.ContactInfo.GitHub != "" {
		score += 15
	}
	return score
}

// gradeFor 总分到字母等级的阶梯映射
func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}

// identifyIssues 类别分低于阈值时产出结构化问题
func identifyIssues(scores map[string]float64) []types.ATSIssue {
	var issues []types.ATSIssue

	if scores[types.ATSCategoryFormatting] < 70 {
		issues = append(issues, types.ATSIssue{
			Category: "Formatting",
			Severity: "High",
			Issue:    "Resume contains ATS-unfriendly formatting elements",
			Fix:      "Remove special characters, tables, and complex formatting",
		})
	}
	if scores[types.ATSCategoryKeywords] < 60 {
		issues = append(issues, types.ATSIssue{
			Category: "Keywords",
			Severity: "High",
			Issue:    "Insufficient keywords and skills",
			Fix:      "Add more relevant skills and industry keywords",
		})
	}
	if scores[types.ATSCategorySections] < 70 {
		issues = append(issues, types.ATSIssue{
			Category: "Structure",
			Severity: "Medium",
			Issue:    "Missing standard resume sections",
			Fix:      "Include sections like Summary, Experience, Education, Skills",
		})
	}
	if scores[types.ATSCategoryContactInfo] < 70 {
		issues = append(issues, types.ATSIssue{
			Category: "Contact Info",
			Severity: "High",
			Issue:    "Incomplete contact information",
			Fix:      "Add email, phone, and professional profiles (LinkedIn)",
		})
	}
	return issues
}

// atsRecommendations 低于80分的类别产出建议文本，阈值与问题清单相互独立
func atsRecommendations(scores map[string]float64) []string {
	var recs []string
	if scores[types.ATSCategoryFormatting] < 80 {
		recs = append(recs, "Use simple, clean formatting without tables or special characters")
	}
	if scores[types.ATSCategoryKeywords] < 80 {
		recs = append(recs, "Include more industry-specific keywords and technical skills")
	}
	if scores[types.ATSCategorySections] < 80 {
		recs = append(recs, "Add standard sections: Summary, Experience, Education, Skills")
	}
	if scores[types.ATSCategoryReadability] < 80 {
		recs = append(recs, "Use clear, concise language with active voice")
	}
	if scores[types.ATSCategoryContactInfo] < 80 {
		recs = append(recs, "Ensure all contact information is clearly visible at the top")
	}
	return recs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
