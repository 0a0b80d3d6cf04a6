package types

import "time"

// SkillCategory 技能类别枚举，类别集合是固定的数据表，新增类别属于数据变更
type SkillCategory string

const (
	// CategoryProgramming 编程语言类
	CategoryProgramming SkillCategory = "programming"
	// CategoryWeb Web开发类
	CategoryWeb SkillCategory = "web"
	// CategoryDatabase 数据库类
	CategoryDatabase SkillCategory = "database"
	// CategoryCloud 云与DevOps类
	CategoryCloud SkillCategory = "cloud"
	// CategoryDataScience 数据科学类
	CategoryDataScience SkillCategory = "data_science"
	// CategoryTools 工具类
	CategoryTools SkillCategory = "tools"
	// CategorySoftSkills 软技能类
	CategorySoftSkills SkillCategory = "soft_skills"
)

// AllSkillCategories 按固定顺序列出全部技能类别，遍历字典时以此为准，保证输出顺序确定
var AllSkillCategories = []SkillCategory{
	CategoryProgramming,
	CategoryWeb,
	CategoryDatabase,
	CategoryCloud,
	CategoryDataScience,
	CategoryTools,
	CategorySoftSkills,
}

// ContactInfo 联系方式，各字段均可缺省，取文本中的首个匹配
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry 一段工作经历：起止时间原样保留，上下文截断到200字符
type ExperienceEntry struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Context string `json:"context"`
}

// SearchLink 求职搜索链接
type SearchLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SectionFlags 的6个固定键名
const (
	SectionHasSummary        = "has_summary"
	SectionHasExperience     = "has_experience"
	SectionHasEducation      = "has_education"
	SectionHasSkills         = "has_skills"
	SectionHasCertifications = "has_certifications"
	SectionHasProjects       = "has_projects"
)

// AllSectionFlags 全部章节标志键，Sections中6个键永远齐全
var AllSectionFlags = []string{
	SectionHasSummary,
	SectionHasExperience,
	SectionHasEducation,
	SectionHasSkills,
	SectionHasCertifications,
	SectionHasProjects,
}

// ResumeRecord 简历的结构化数据，由特征提取器一次性生成，落库后只读。
// 不变式：Skills与SkillCategories来自同一技能字典，两者互相覆盖；
// TotalExperienceYears非负；Sections永远包含全部6个布尔键。
type ResumeRecord struct {
	RawText              string                     `json:"raw_text"`
	ContactInfo          ContactInfo                `json:"contact_info"`
	Skills               []string                   `json:"skills"`
	SkillCategories      map[SkillCategory][]string `json:"skill_categories"`
	Experience           []ExperienceEntry          `json:"experience"`
	Education            []string                   `json:"education"`
	Certifications       []string                   `json:"certifications"`
	TotalExperienceYears int                        `json:"total_experience"`
	Keywords             []string                   `json:"keywords"`
	Sections             map[string]bool            `json:"sections"`
	SearchLinks          []SearchLink               `json:"search_results"`
}

// MatchResult 简历与岗位描述的匹配结果，按次生成、追加保存，不会被修改
type MatchResult struct {
	OverallScore        float64  `json:"overall_score"`
	SimilarityScore     float64  `json:"similarity_score"`
	SkillMatchPct       float64  `json:"skill_match_percentage"`
	ExperienceMatch     float64  `json:"experience_match"`
	MatchedSkills       []string `json:"matched_skills"`
	MissingSkills       []string `json:"missing_skills"`
	RequiredExperience  int      `json:"required_experience"`
	CandidateExperience int      `json:"candidate_experience"`
	Recommendation      string   `json:"recommendation"`
}

// MatchHistoryEntry 历史匹配记录，按匹配时间倒序返回
type MatchHistoryEntry struct {
	ID             uint        `json:"id"`
	ResumeID       uint        `json:"resume_id"`
	JobDescription string      `json:"job_description"`
	MatchDate      time.Time   `json:"match_date"`
	Result         MatchResult `json:"result"`
}

// ResumeSummary 简历列表项
type ResumeSummary struct {
	ID         uint      `json:"id"`
	Filename   string    `json:"filename"`
	UploadDate time.Time `json:"upload_date"`
}
