package parser

import (
	"regexp"
	"strings"
)

var degreeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|associate|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?|mba)\b`),
	regexp.MustCompile(`(?i)\b(b\.?tech|m\.?tech|b\.?e\.?|m\.?e\.?)\b`),
}

const educationContextLimit = 200

// extractEducation 逐行匹配学位关键词，记录命中行±1行的上下文，
// 截断到200字符并按首次出现去重
func extractEducation(lines []string) []string {
	seen := make(map[string]bool)
	var education []string

	for i, line := range lines {
		for _, re := range degreeRes {
			if !re.MatchString(line) {
				continue
			}
			lo := i - 1
			if lo < 0 {
				lo = 0
			}
			hi := i + 2
			if hi > len(lines) {
				hi = len(lines)
			}
			context := strings.Join(lines[lo:hi], " ")
			if len(context) > educationContextLimit {
				context = context[:educationContextLimit]
			}
			if !seen[context] {
				seen[context] = true
				education = append(education, context)
			}
			break // 一行只记一次
		}
	}
	return education
}
