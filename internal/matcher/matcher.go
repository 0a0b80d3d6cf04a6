package matcher

import (
	"math"
	"sort"
	"strings"

	"resume-match-go/internal/types"
)

// 综合匹配分的三项权重，合计1.0
const (
	weightSimilarity      = 0.4
	weightSkillMatch      = 0.4
	weightExperienceMatch = 0.2
)

// JobMatcher 简历与JD的匹配器。无内部状态，可并发复用。
type JobMatcher struct {
	similarity SimilarityStrategy
}

// NewJobMatcher 创建匹配器。strategy传nil时用TF-IDF余弦作为默认后端。
func NewJobMatcher(strategy SimilarityStrategy) *JobMatcher {
	if strategy == nil {
		strategy = NewTFIDFCosine()
	}
	return &JobMatcher{similarity: strategy}
}

// Match 计算简历与JD的匹配结果：文本相似度、技能匹配率、
// 经验匹配率按0.4/0.4/0.2加权出综合分，并给出申请建议。
func (m *JobMatcher) Match(rec *types.ResumeRecord, jobDescription string) *types.MatchResult {
	resumeText := prepareResumeText(rec)
	similarityScore := m.similarity.Similarity(resumeText, jobDescription)

	jobSkills := extractJobSkills(jobDescription)
	resumeSkills := lowerSkillSet(rec.Skills)

	matched, missing := partitionSkills(jobSkills, resumeSkills)
	skillMatchPct := 0.0
	if len(jobSkills) > 0 {
		skillMatchPct = float64(len(matched)) / float64(len(jobSkills)) * 100
	}

	requiredExp := extractRequiredExperience(jobDescription)
	candidateExp := rec.TotalExperienceYears
	experienceMatch := calculateExperienceMatch(candidateExp, requiredExp)

	overall := similarityScore*weightSimilarity +
		skillMatchPct*weightSkillMatch +
		experienceMatch*weightExperienceMatch

	return &types.MatchResult{
		OverallScore:        round2(overall),
		SimilarityScore:     round2(similarityScore),
		SkillMatchPct:       round2(skillMatchPct),
		ExperienceMatch:     round2(experienceMatch),
		MatchedSkills:       matched,
		MissingSkills:       missing,
		RequiredExperience:  requiredExp,
		CandidateExperience: candidateExp,
		Recommendation:      recommendationFor(overall),
	}
}

// prepareResumeText 拼出参与相似度计算的简历全文：原始文本、
// 技能、经历上下文、教育条目
func prepareResumeText(rec *types.ResumeRecord) string {
	parts := []string{rec.RawText, strings.Join(rec.Skills, " ")}
	for _, exp := range rec.Experience {
		parts = append(parts, exp.Context)
	}
	parts = append(parts, strings.Join(rec.Education, " "))
	return strings.Join(parts, " ")
}

// calculateExperienceMatch 经验匹配率：JD没写年限要求算满分，
// 达标满分，不达标按比例折算
func calculateExperienceMatch(candidateExp, requiredExp int) float64 {
	if requiredExp == 0 {
		return 100
	}
	if candidateExp >= requiredExp {
		return 100
	}
	return float64(candidateExp) / float64(requiredExp) * 100
}

// recommendationFor 综合分到申请建议的四档映射
func recommendationFor(score float64) string {
	switch {
	case score >= 80:
		return "Excellent match! You should definitely apply."
	case score >= 60:
		return "Good match. Consider applying and highlighting relevant skills."
	case score >= 40:
		return "Moderate match. You may need to acquire some skills first."
	default:
		return "Low match. Consider gaining more relevant experience and skills."
	}
}

func lowerSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

// partitionSkills 把JD技能按简历是否覆盖切成匹配/缺失两组，均有序
func partitionSkills(jobSkills []string, resumeSkills map[string]bool) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, s := range jobSkills {
		if resumeSkills[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
