package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

const sampleResumeText = `John Doe
Senior Software Engineer
Email: john.doe@example.com
Phone: +1 (555) 123-4567
linkedin.com/in/johndoe
github.com/johndoe

Summary
Experienced backend developer with a focus on distributed systems.

Work Experience
Acme Corp
2018-2020
Built Python services on AWS with Docker and Kubernetes.

Beta Inc
2021 - present
Leading a team using Go, MySQL and Redis.

Education
Bachelor of Science in Computer Science
State University

Certifications
AWS Certified Solutions Architect

Skills
Python, Go, JavaScript, React, SQL, Git, Leadership
`

func TestExtractContactInfo(t *testing.T) {
	info := extractContactInfo(sampleResumeText)

	assert.Equal(t, "john.doe@example.com", info.Email, "应提取到邮箱")
	assert.NotEmpty(t, info.Phone, "应提取到电话")
	assert.Equal(t, "linkedin.com/in/johndoe", info.LinkedIn, "应提取到LinkedIn")
	assert.Equal(t, "github.com/johndoe", info.GitHub, "应提取到GitHub")
}

func TestExtractContactInfoMissingFields(t *testing.T) {
	info := extractContactInfo("没有任何联系方式的文本")

	assert.Empty(t, info.Email, "没有邮箱时字段应为空")
	assert.Empty(t, info.Phone, "没有电话时字段应为空")
	assert.Empty(t, info.LinkedIn, "没有LinkedIn时字段应为空")
	assert.Empty(t, info.GitHub, "没有GitHub时字段应为空")
}

func TestExtractSkillsAndCategoriesConsistent(t *testing.T) {
	skills := extractSkills(sampleResumeText)
	categories := categorizeSkills(sampleResumeText)

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "React")
	assert.Contains(t, skills, "Leadership")

	// 分类结果的并集必须等于技能全集
	fromCategories := make(map[string]bool)
	for _, list := range categories {
		for _, s := range list {
			fromCategories[s] = true
		}
	}
	for _, s := range skills {
		assert.True(t, fromCategories[s], "技能 %s 应出现在某个分类里", s)
	}

	assert.Contains(t, categories[types.CategoryProgramming], "Python")
	assert.Contains(t, categories[types.CategoryCloud], "Aws")
}

func TestTitleCaseSkill(t *testing.T) {
	assert.Equal(t, "Node.Js", titleCaseSkill("node.js"))
	assert.Equal(t, "Machine Learning", titleCaseSkill("machine learning"))
	assert.Equal(t, "C++", titleCaseSkill("c++"))
}

func TestExtractExperienceEntries(t *testing.T) {
	lines := strings.Split(sampleResumeText, "\n")
	entries := extractExperience(lines)

	require.Len(t, entries, 2, "样例简历应有两段日期区间")
	assert.Equal(t, "2018", entries[0].Start)
	assert.Equal(t, "2020", entries[0].End)
	assert.Equal(t, "2021", entries[1].Start)
	assert.Equal(t, "present", entries[1].End)
	assert.Contains(t, entries[0].Context, "Acme Corp", "上下文应包含命中行附近内容")
	assert.LessOrEqual(t, len(entries[0].Context), 200, "上下文不应超过200字符")
}

func TestTotalExperienceYearsExplicit(t *testing.T) {
	// 显式声明优先于日期区间求和
	text := "5 years of experience\n2018-2020"
	assert.Equal(t, 5, totalExperienceYears(text, 2026))

	text = "3+ years experience and also 8 years of experience"
	assert.Equal(t, 8, totalExperienceYears(text, 2026), "多个声明取最大")
}

func TestTotalExperienceYearsFromRanges(t *testing.T) {
	text := "2018-2020\n2021 - present"
	// (2020-2018) + (2026-2021) = 7
	assert.Equal(t, 7, totalExperienceYears(text, 2026))

	assert.Equal(t, 0, totalExperienceYears("没有任何日期", 2026))
	// 倒置区间不产生负数
	assert.Equal(t, 0, totalExperienceYears("2020-2018", 2026))
}

func TestExtractEducation(t *testing.T) {
	lines := strings.Split(sampleResumeText, "\n")
	education := extractEducation(lines)

	require.NotEmpty(t, education, "应识别到学位行")
	assert.Contains(t, education[0], "Bachelor of Science")
}

func TestExtractCertifications(t *testing.T) {
	lines := strings.Split(sampleResumeText, "\n")
	certs := extractCertifications(lines)

	// "Certifications"标题行与"AWS Certified"行都命中关键词
	require.Len(t, certs, 2)
	assert.Equal(t, "Certifications", certs[0])
	assert.Equal(t, "AWS Certified Solutions Architect", certs[1])
}

func TestKeywordTaggerBoostsDictionarySkills(t *testing.T) {
	tagger := &RegexKeywordTagger{}
	// "python"出现一次但字典加权后应排在普通词前面
	text := "banana banana python banana"
	keywords := tagger.Extract(text)

	require.NotEmpty(t, keywords)
	assert.Equal(t, "banana", keywords[0], "频次最高的词排第一")
	assert.Contains(t, keywords, "python")

	idxPython := indexOf(keywords, "python")
	require.GreaterOrEqual(t, idxPython, 0)
	assert.Less(t, idxPython, 3, "加权后的技能词应进入前列")
}

func TestKeywordTaggerLimitAndStopWords(t *testing.T) {
	tagger := &RegexKeywordTagger{}
	keywords := tagger.Extract(sampleResumeText)

	assert.LessOrEqual(t, len(keywords), 20, "关键词最多20个")
	assert.NotContains(t, keywords, "the", "停用词应被过滤")
	assert.NotContains(t, keywords, "experience", "简历结构词应被过滤")
}

func TestIdentifySectionsAlwaysSixKeys(t *testing.T) {
	sections := identifySections(sampleResumeText)
	require.Len(t, sections, 6, "返回值必须包含全部6个章节键")
	assert.True(t, sections[types.SectionHasSummary])
	assert.True(t, sections[types.SectionHasExperience])
	assert.True(t, sections[types.SectionHasEducation])
	assert.True(t, sections[types.SectionHasSkills])
	assert.True(t, sections[types.SectionHasCertifications])
	assert.False(t, sections[types.SectionHasProjects], "样例简历没有项目章节")

	empty := identifySections("")
	require.Len(t, empty, 6, "空文本也返回全部6个键")
	for flag, present := range empty {
		assert.False(t, present, "空文本章节 %s 应为false", flag)
	}
}

func TestGenerateSearchLinks(t *testing.T) {
	links := generateSearchLinks(sampleResumeText, []string{"Python", "Go", "React", "SQL"}, 2026)

	require.Len(t, links, 3, "永远生成3个链接")
	assert.Contains(t, links[0].Label, "Jobs for")
	assert.Contains(t, links[0].Label, "Python, Go, React", "最多取前3个技能")
	assert.Contains(t, links[1].Label, "Remote")
	assert.Contains(t, links[2].Label, "Trending Skills")
	for _, link := range links {
		assert.True(t, strings.HasPrefix(link.URL, "https://www.google.com/search?q="))
		assert.NotContains(t, link.URL, " ", "查询参数必须URL转义")
	}
}

func TestGenerateSearchLinksDefaultRole(t *testing.T) {
	links := generateSearchLinks("没有职位关键词的文本", nil, 2026)

	require.Len(t, links, 3)
	assert.Contains(t, links[0].Label, "Software Engineer", "识别不到职位时用默认头衔")
}

func TestParseFullRecord(t *testing.T) {
	p := NewResumeParser(WithReferenceYear(2026))
	record := p.Parse(sampleResumeText)

	require.NotNil(t, record)
	assert.Equal(t, sampleResumeText, record.RawText)
	assert.Equal(t, "john.doe@example.com", record.ContactInfo.Email)
	assert.NotEmpty(t, record.Skills)
	assert.NotEmpty(t, record.SkillCategories)
	assert.Len(t, record.Experience, 2)
	assert.NotEmpty(t, record.Education)
	assert.Len(t, record.Certifications, 2)
	assert.Equal(t, 7, record.TotalExperienceYears, "2018-2020加2021-present按参照年2026折算")
	assert.NotEmpty(t, record.Keywords)
	assert.Len(t, record.Sections, 6)
	assert.Len(t, record.SearchLinks, 3)
}

func TestParseEmptyText(t *testing.T) {
	p := NewResumeParser(WithReferenceYear(2026))
	record := p.Parse("")

	require.NotNil(t, record, "空文本也要产出合法记录")
	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Experience)
	assert.Zero(t, record.TotalExperienceYears)
	assert.Len(t, record.Sections, 6)
	assert.Len(t, record.SearchLinks, 3, "搜索链接退化到默认头衔但数量不变")
}

func indexOf(list []string, target string) int {
	for i, s := range list {
		if s == target {
			return i
		}
	}
	return -1
}
