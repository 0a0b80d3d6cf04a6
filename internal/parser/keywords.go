package parser

import (
	"regexp"
	"sort"
	"strings"

	"resume-match-go/internal/types"
)

const keywordLimit = 20

// KeywordTagger 关键词提取策略。默认实现是停用词过滤的正则分词器；
// 如果接入真正的词性标注后端，替换实现即可，输出形态保持一致
// （至多20个词，按频次降序）。
type KeywordTagger interface {
	Extract(text string) []string
}

// RegexKeywordTagger 正则分词关键词提取。把字典里命中的技能以双倍权重
// 注入词频池，让已知技术词在排名中占优。
type RegexKeywordTagger struct{}

var keywordTokenRe = regexp.MustCompile(`[a-z][a-z0-9+#]*`)

// 常见停用词加上简历结构词，这些词在任何简历里都高频出现，没有区分度
var keywordStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "in": true, "on": true, "at": true,
	"for": true, "to": true, "of": true, "with": true, "and": true, "or": true,
	"so": true, "but": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "has": true, "have": true, "had": true, "do": true,
	"does": true, "did": true, "this": true, "that": true, "these": true,
	"those": true, "my": true, "your": true, "his": true, "her": true,
	"its": true, "our": true, "their": true, "what": true, "which": true,
	"who": true, "whom": true, "where": true, "when": true, "why": true,
	"how": true, "experience": true, "education": true, "skills": true,
	"work": true, "project": true, "projects": true, "summary": true,
	"profile": true, "contact": true, "email": true, "phone": true,
	"address": true, "linkedin": true, "github": true, "year": true,
	"years": true, "month": true, "months": true, "present": true,
	"current": true, "date": true, "from": true, "till": true,
}

// Extract 实现 KeywordTagger
func (t *RegexKeywordTagger) Extract(text string) []string {
	textLower := strings.ToLower(text)

	var pool []string
	for _, w := range keywordTokenRe.FindAllString(textLower, -1) {
		if len(w) > 2 && !keywordStopWords[w] {
			pool = append(pool, w)
		}
	}

	// 字典技能加权：每个命中的技能再投两票
	for _, category := range types.AllSkillCategories {
		for _, skill := range skillDictionary[category] {
			if strings.Contains(textLower, skill) {
				pool = append(pool, skill, skill)
			}
		}
	}

	return topByFrequency(pool, keywordLimit)
}

// topByFrequency 按频次降序取前limit个，频次相同按首次出现顺序
func topByFrequency(words []string, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for _, w := range words {
		if counts[w] == 0 {
			firstSeen[w] = len(order)
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
