package types

// ATS评分的五个类别名，作为CategoryScores的键
const (
	ATSCategoryFormatting  = "formatting"
	ATSCategoryKeywords    = "keywords"
	ATSCategorySections    = "sections"
	ATSCategoryReadability = "readability"
	ATSCategoryContactInfo = "contact_info"
)

// ATSIssue ATS兼容性问题，带严重程度和修复建议
type ATSIssue struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Issue    string `json:"issue"`
	Fix      string `json:"fix"`
}

// ATSReport ATS兼容性评分报告。五项类别分加权汇总为总分，
// 权重合计1.0，总分保留2位小数。
type ATSReport struct {
	OverallScore    float64            `json:"overall_score"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	Grade           string             `json:"grade"`
	Issues          []ATSIssue         `json:"issues"`
	Recommendations []string           `json:"recommendations"`
}

// FileFormatCheck 文件格式建议（静态内容）
type FileFormatCheck struct {
	Recommended []string `json:"recommended"`
	Avoid       []string `json:"avoid"`
	Note        string   `json:"note"`
}

// SpecialCharIssue 单个问题字符及替换建议
type SpecialCharIssue struct {
	Character  string `json:"character"`
	Suggestion string `json:"suggestion"`
}

// SpecialCharReport 特殊字符检查结果
type SpecialCharReport struct {
	Found  bool               `json:"found"`
	Issues []SpecialCharIssue `json:"issues"`
}

// BulletPointCheck 项目符号使用情况
type BulletPointCheck struct {
	Count          int    `json:"count"`
	Recommendation string `json:"recommendation"`
	Status         string `json:"status"`
}

// DateFormatCheck 日期格式一致性检查，发现多种格式视为负面信号
type DateFormatCheck struct {
	FormatsFound   []string `json:"formats_found"`
	Consistent     bool     `json:"consistent"`
	Recommendation string   `json:"recommendation"`
}

// ActionVerbCheck 强动词使用情况
type ActionVerbCheck struct {
	Count  int      `json:"count"`
	Verbs  []string `json:"verbs"`
	Status string   `json:"status"`
}

// AchievementCheck 可量化成果检查，最多返回10个原样示例
type AchievementCheck struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
	Status   string   `json:"status"`
}

// DetailedATSReport 在基础报告上追加的细化检查
type DetailedATSReport struct {
	ATSReport
	FileFormatCheck          FileFormatCheck   `json:"file_format_check"`
	SpecialCharacters        SpecialCharReport `json:"special_characters"`
	BulletPoints             BulletPointCheck  `json:"bullet_points"`
	DateFormats              DateFormatCheck   `json:"date_formats"`
	ActionVerbs              ActionVerbCheck   `json:"action_verbs"`
	QuantifiableAchievements AchievementCheck  `json:"quantifiable_achievements"`
}

// LearningRecommendation 针对缺口技能的学习资源建议
type LearningRecommendation struct {
	Skill     string `json:"skill"`
	Resources string `json:"resources"`
	Priority  string `json:"priority"`
}

// MissingSkills 缺口技能按优先级的划分
type MissingSkills struct {
	Critical   []string `json:"critical"`
	NiceToHave []string `json:"nice_to_have"`
}

// SkillGap 技能差距分析结果
type SkillGap struct {
	MatchedSkills           []string                 `json:"matched_skills"`
	Missing                 MissingSkills            `json:"missing_skills"`
	ExtraSkills             []string                 `json:"extra_skills"`
	MatchPercentage         float64                  `json:"match_percentage"`
	LearningRecommendations []LearningRecommendation `json:"learning_recommendations"`
}
