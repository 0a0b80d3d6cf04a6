package parser

import (
	"strings"
	"unicode"

	"resume-match-go/internal/types"
)

// skillDictionary 静态技能字典：7个类别，键为类别，值为小写关键词表。
// 这是数据表而非代码逻辑，增删技能只改这里。
var skillDictionary = map[types.SkillCategory][]string{
	types.CategoryProgramming: {
		"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift",
		"kotlin", "go", "rust", "typescript", "scala", "r", "matlab",
	},
	types.CategoryWeb: {
		"html", "css", "react", "angular", "vue", "node.js", "express",
		"django", "flask", "spring", "asp.net", "laravel", "next.js", "nuxt",
	},
	types.CategoryDatabase: {
		"sql", "mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite",
		"cassandra", "dynamodb", "firebase",
	},
	types.CategoryCloud: {
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
		"ci/cd", "devops",
	},
	types.CategoryDataScience: {
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"scikit-learn", "pandas", "numpy", "data analysis", "statistics",
	},
	types.CategoryTools: {
		"git", "github", "jira", "confluence", "slack", "vs code", "intellij",
		"postman", "figma", "adobe",
	},
	types.CategorySoftSkills: {
		"leadership", "communication", "teamwork", "problem solving",
		"critical thinking", "time management", "agile", "scrum",
	},
}

// titleCaseSkill 把字典技能转为展示形态：任何非字母后的首字母大写，
// 例如 "node.js" -> "Node.Js"、"machine learning" -> "Machine Learning"。
func titleCaseSkill(skill string) string {
	var b strings.Builder
	b.Grow(len(skill))
	prevLetter := false
	for _, r := range skill {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(r)
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// extractSkills 在小写全文上做子串扫描，命中的技能按字典顺序去重返回。
// O(字典大小 × 文本长度)，对简历级别的文本足够快。
func extractSkills(text string) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)
	var skills []string
	for _, category := range types.AllSkillCategories {
		for _, skill := range skillDictionary[category] {
			if !strings.Contains(textLower, skill) {
				continue
			}
			titled := titleCaseSkill(skill)
			if !seen[titled] {
				seen[titled] = true
				skills = append(skills, titled)
			}
		}
	}
	return skills
}

// categorizeSkills 按类别分桶，值与extractSkills来自同一字典，两者必然一致
func categorizeSkills(text string) map[types.SkillCategory][]string {
	textLower := strings.ToLower(text)
	categorized := make(map[types.SkillCategory][]string)
	for _, category := range types.AllSkillCategories {
		var found []string
		for _, skill := range skillDictionary[category] {
			if strings.Contains(textLower, skill) {
				found = append(found, titleCaseSkill(skill))
			}
		}
		if len(found) > 0 {
			categorized[category] = found
		}
	}
	return categorized
}
