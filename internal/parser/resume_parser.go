package parser

import (
	"strings"
	"time"

	"resume-match-go/internal/types"
)

// ResumeParser 特征提取器：纯文本进、结构化ResumeRecord出。
// 纯函数，不做任何I/O，可在并发请求间无锁共享。
type ResumeParser struct {
	tagger KeywordTagger
	// referenceYear 解析"present/current"用的参照年份。0表示取
	// 求值时的当前年份；测试或需要可复现输出的调用方可以钉死它。
	referenceYear int
}

// ParserOption 解析器可选配置
type ParserOption func(*ResumeParser)

// WithKeywordTagger 替换关键词提取策略
func WithKeywordTagger(t KeywordTagger) ParserOption {
	return func(p *ResumeParser) {
		p.tagger = t
	}
}

// WithReferenceYear 钉死参照年份，用于可复现的测试输出
func WithReferenceYear(year int) ParserOption {
	return func(p *ResumeParser) {
		p.referenceYear = year
	}
}

// NewResumeParser 创建特征提取器，默认使用正则分词关键词策略
func NewResumeParser(opts ...ParserOption) *ResumeParser {
	p := &ResumeParser{
		tagger: &RegexKeywordTagger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ResumeParser) refYear() int {
	if p.referenceYear > 0 {
		return p.referenceYear
	}
	return time.Now().Year()
}

// Parse 从纯文本导出完整的ResumeRecord。空文本也能产出合法记录
// （各字段为空、分数走下游的保底路径），绝不报错。
func (p *ResumeParser) Parse(plainText string) *types.ResumeRecord {
	lines := strings.Split(plainText, "\n")
	skills := extractSkills(plainText)
	year := p.refYear()

	return &types.ResumeRecord{
		RawText:              plainText,
		ContactInfo:          extractContactInfo(plainText),
		Skills:               skills,
		SkillCategories:      categorizeSkills(plainText),
		Experience:           extractExperience(lines),
		Education:            extractEducation(lines),
		Certifications:       extractCertifications(lines),
		TotalExperienceYears: totalExperienceYears(plainText, year),
		Keywords:             p.tagger.Extract(plainText),
		Sections:             identifySections(plainText),
		SearchLinks:          generateSearchLinks(plainText, skills, year+1),
	}
}
