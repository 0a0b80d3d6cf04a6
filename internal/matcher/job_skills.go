package matcher

import (
	"regexp"
	"sort"
	"strings"
)

// jobSkillRes 六组JD常见技术技能模式：语言、框架、数据库、
// 云与容器、ML/数据、工程实践
var jobSkillRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(python|java|javascript|c\+\+|c#|ruby|php|swift|kotlin|go|rust)\b`),
	regexp.MustCompile(`\b(react|angular|vue|node\.js|django|flask|spring|express)\b`),
	regexp.MustCompile(`\b(sql|mysql|postgresql|mongodb|redis|oracle)\b`),
	regexp.MustCompile(`\b(aws|azure|gcp|docker|kubernetes|jenkins)\b`),
	regexp.MustCompile(`\b(machine learning|deep learning|ai|data science|analytics)\b`),
	regexp.MustCompile(`\b(git|agile|scrum|devops|ci/cd)\b`),
}

// requirementLineMarkers 出现这些词的行被视为技能要求行，
// 行内的零散词条也收进技能集合
var requirementLineMarkers = []string{"required", "must have", "skills", "experience with"}

var jobSkillTokenRe = regexp.MustCompile(`\b[a-z]+(?:\.[a-z]+)?\b`)

// jobNoiseWords 要求行里的叙述性填充词，不是技能，需要过滤，
// 否则会稀释技能匹配率
var jobNoiseWords = map[string]bool{
	"required": true, "require": true, "requires": true, "requirements": true,
	"must": true, "have": true, "skills": true, "skill": true,
	"experience": true, "years": true, "year": true, "with": true,
	"minimum": true, "least": true, "preferred": true, "plus": true,
	"strong": true, "knowledge": true, "ability": true, "proficiency": true,
	"proficient": true, "familiarity": true, "familiar": true,
	"working": true, "understanding": true, "the": true, "and": true,
	"for": true, "including": true, "such": true, "etc": true,
}

// extractJobSkills 从JD提取技能集合：六组模式扫全文，再从技能
// 要求行收集零散词条（长度>2且非填充词）。返回排好序的去重切片。
func extractJobSkills(jobDescription string) []string {
	jobLower := strings.ToLower(jobDescription)

	seen := make(map[string]bool)
	for _, re := range jobSkillRes {
		for _, m := range re.FindAllString(jobLower, -1) {
			seen[m] = true
		}
	}

	for _, line := range strings.Split(jobLower, "\n") {
		if !containsAnyMarker(line) {
			continue
		}
		for _, w := range jobSkillTokenRe.FindAllString(line, -1) {
			if len(w) > 2 && !jobNoiseWords[w] {
				seen[w] = true
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

func containsAnyMarker(line string) bool {
	for _, marker := range requirementLineMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// requiredExperienceRes 三种经验年限表述，取全部匹配的最大值
var requiredExperienceRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of)?\s*experience`),
	regexp.MustCompile(`(?i)minimum\s*(?:of)?\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)at least\s*(\d+)\s*years?`),
}

// extractRequiredExperience 从JD解析要求的经验年限，解析不到返回0
func extractRequiredExperience(jobDescription string) int {
	maxYears := 0
	for _, re := range requiredExperienceRes {
		for _, m := range re.FindAllStringSubmatch(jobDescription, -1) {
			if y := atoiSafe(m[1]); y > maxYears {
				maxYears = y
			}
		}
	}
	return maxYears
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
