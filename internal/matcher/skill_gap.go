package matcher

import (
	"regexp"
	"sort"
	"strings"

	"resume-match-go/internal/types"
)

// criticalKeywords JD里标记硬性要求的措辞
var criticalKeywords = []string{"required", "must have", "essential", "mandatory"}

const defaultCriticalLimit = 3

// learningResources 缺口技能到学习资源的静态映射
var learningResources = map[string]string{
	"python":           "Python.org tutorials, Coursera Python courses",
	"javascript":       "MDN Web Docs, freeCodeCamp",
	"react":            "React official docs, Scrimba React course",
	"aws":              "AWS Training and Certification, A Cloud Guru",
	"docker":           "Docker official docs, Docker Mastery course",
	"machine learning": "Coursera ML course, fast.ai",
	"sql":              "SQLZoo, Mode Analytics SQL tutorial",
}

const fallbackResource = "Search online courses and tutorials"

// AnalyzeSkillGap 对比简历技能和JD技能：产出匹配/缺失/多余三组
// 技能，把缺失技能按JD措辞分成关键和加分两档，并给出关键技能的
// 学习建议。所有切片均按字典序，输出可复现。
func (m *JobMatcher) AnalyzeSkillGap(rec *types.ResumeRecord, jobDescription string) *types.SkillGap {
	jobSkills := extractJobSkills(jobDescription)
	resumeSkills := lowerSkillSet(rec.Skills)

	matched, missing := partitionSkills(jobSkills, resumeSkills)

	jobSkillSet := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		jobSkillSet[s] = true
	}
	extra := []string{}
	for s := range resumeSkills {
		if !jobSkillSet[s] {
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)

	critical := identifyCriticalSkills(jobDescription, missing)
	criticalSet := make(map[string]bool, len(critical))
	for _, s := range critical {
		criticalSet[s] = true
	}
	niceToHave := []string{}
	for _, s := range missing {
		if !criticalSet[s] {
			niceToHave = append(niceToHave, s)
		}
	}

	matchPct := 0.0
	if len(jobSkills) > 0 {
		matchPct = float64(len(matched)) / float64(len(jobSkills)) * 100
	}

	return &types.SkillGap{
		MatchedSkills: matched,
		Missing: types.MissingSkills{
			Critical:   critical,
			NiceToHave: niceToHave,
		},
		ExtraSkills:             extra,
		MatchPercentage:         round2(matchPct),
		LearningRecommendations: learningRecommendations(critical),
	}
}

// identifyCriticalSkills 在JD里和硬性措辞同段出现的缺失技能标为
// 关键。一个都没命中时，按技能在JD里首次出现的位置取前3个兜底
// （位置相同按字典序），保证结果确定。
func identifyCriticalSkills(jobDescription string, missingSkills []string) []string {
	jobLower := strings.ToLower(jobDescription)

	critical := []string{}
	for _, skill := range missingSkills {
		quoted := regexp.QuoteMeta(skill)
		for _, keyword := range criticalKeywords {
			pattern := keyword + `.*` + quoted + `|` + quoted + `.*` + keyword
			if matched, _ := regexp.MatchString(pattern, jobLower); matched {
				critical = append(critical, skill)
				break
			}
		}
	}
	if len(critical) > 0 {
		sort.Strings(critical)
		return critical
	}
	if len(missingSkills) == 0 {
		return critical
	}

	fallback := make([]string, len(missingSkills))
	copy(fallback, missingSkills)
	sort.SliceStable(fallback, func(i, j int) bool {
		pi := strings.Index(jobLower, fallback[i])
		pj := strings.Index(jobLower, fallback[j])
		if pi != pj {
			return pi < pj
		}
		return fallback[i] < fallback[j]
	})
	if len(fallback) > defaultCriticalLimit {
		fallback = fallback[:defaultCriticalLimit]
	}
	sort.Strings(fallback)
	return fallback
}

func learningRecommendations(criticalSkills []string) []types.LearningRecommendation {
	recs := make([]types.LearningRecommendation, 0, len(criticalSkills))
	for _, skill := range criticalSkills {
		resource, ok := learningResources[strings.ToLower(skill)]
		if !ok {
			resource = fallbackResource
		}
		recs = append(recs, types.LearningRecommendation{
			Skill:     skill,
			Resources: resource,
			Priority:  "High",
		})
	}
	return recs
}
