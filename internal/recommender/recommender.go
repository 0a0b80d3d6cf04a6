package recommender

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/types"
)

// Recommendation 单条改进建议
type Recommendation struct {
	Category   string `json:"category"`
	Priority   string `json:"priority,omitempty"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact,omitempty"`
}

// DetailedRecommendations 规则建议+AI建议的组合结果。AI不可用时
// AIRecommendations为空并在Note里说明，绝不让调用方拿到错误。
type DetailedRecommendations struct {
	BasicRecommendations []Recommendation `json:"basic_recommendations"`
	AIRecommendations    []Recommendation `json:"ai_recommendations,omitempty"`
	Summary              string           `json:"summary,omitempty"`
	Note                 string           `json:"note,omitempty"`
}

// SkillRecommendation 目标岗位的技能补齐建议
type SkillRecommendation struct {
	TargetRole        string   `json:"target_role"`
	RecommendedSkills []string `json:"recommended_skills"`
	Priority          string   `json:"priority"`
}

// roleSkills 常见岗位到核心技能清单的映射，顺序即推荐顺序
var roleSkills = []struct {
	role   string
	skills []string
}{
	{"software engineer", []string{"Python", "Java", "Git", "Docker", "AWS", "SQL", "React", "Node.js"}},
	{"data scientist", []string{"Python", "R", "Machine Learning", "SQL", "Pandas", "TensorFlow", "Statistics"}},
	{"web developer", []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Git", "REST APIs"}},
	{"devops engineer", []string{"Docker", "Kubernetes", "AWS", "Jenkins", "Terraform", "Linux", "Python"}},
	{"product manager", []string{"Agile", "Scrum", "JIRA", "Analytics", "SQL", "Communication", "Leadership"}},
}

// Recommender 简历改进建议生成器。规则部分纯本地计算；
// 配置了API Key时额外走LLM产出细化建议。
type Recommender struct {
	client  *openai.Client
	model   string
	temp    float64
	maxTok  int
	timeout time.Duration
	log     zerolog.Logger
}

// NewRecommender 创建建议生成器。cfg.APIKey为空时AI部分禁用，
// 只提供规则建议。
func NewRecommender(cfg config.OpenAIConfig) *Recommender {
	r := &Recommender{
		model:   cfg.Model,
		temp:    cfg.Temperature,
		maxTok:  cfg.MaxTokens,
		timeout: config.GetDuration(cfg.RequestTimeout, 30*time.Second),
		log:     logger.Logger.With().Str("component", "recommender").Logger(),
	}
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		r.client = openai.NewClientWithConfig(clientCfg)
	}
	return r
}

// GetRecommendations 基于简历结构特征的规则建议：技能数量、
// 经历条数、缺失章节、证书缺失各对应固定建议
func (r *Recommender) GetRecommendations(rec *types.ResumeRecord) []Recommendation {
	var recs []Recommendation

	if len(rec.Skills) < 10 {
		recs = append(recs, Recommendation{
			Category:   "Skills",
			Priority:   "High",
			Suggestion: "Add more technical skills to your resume. Aim for at least 10-15 relevant skills.",
			Impact:     "Increases visibility in ATS searches",
		})
	}
	if len(rec.Experience) < 2 {
		recs = append(recs, Recommendation{
			Category:   "Experience",
			Priority:   "High",
			Suggestion: "Provide more detailed work experience with specific achievements and responsibilities.",
			Impact:     "Demonstrates your career progression",
		})
	}
	if !rec.Sections[types.SectionHasSummary] {
		recs = append(recs, Recommendation{
			Category:   "Summary",
			Priority:   "Medium",
			Suggestion: "Add a professional summary at the top highlighting your key strengths and career goals.",
			Impact:     "Captures recruiter attention immediately",
		})
	}
	if !rec.Sections[types.SectionHasProjects] {
		recs = append(recs, Recommendation{
			Category:   "Projects",
			Priority:   "Medium",
			Suggestion: "Include a projects section showcasing your practical work and achievements.",
			Impact:     "Demonstrates hands-on experience",
		})
	}
	if len(rec.Certifications) == 0 {
		recs = append(recs, Recommendation{
			Category:   "Certifications",
			Priority:   "Low",
			Suggestion: "Consider adding relevant certifications to boost your credibility.",
			Impact:     "Shows commitment to professional development",
		})
	}
	return recs
}

// GetDetailedRecommendations 规则建议加上AI建议。AI调用失败只降级，
// 不向上传播错误。
func (r *Recommender) GetDetailedRecommendations(ctx context.Context, rec *types.ResumeRecord) *DetailedRecommendations {
	basic := r.GetRecommendations(rec)

	if r.client == nil {
		return &DetailedRecommendations{
			BasicRecommendations: basic,
			Note:                 "Set OPENAI_API_KEY environment variable for AI-powered recommendations",
		}
	}

	aiRecs, err := r.aiRecommendations(ctx, rec)
	if err != nil {
		r.log.Warn().Err(err).Msg("AI建议生成失败，降级为纯规则建议")
		return &DetailedRecommendations{
			BasicRecommendations: basic,
			AIRecommendations:    []Recommendation{},
			Note:                 "AI recommendations unavailable. Please check OpenAI API key.",
		}
	}

	return &DetailedRecommendations{
		BasicRecommendations: basic,
		AIRecommendations:    aiRecs,
		Summary:              GenerateSummary(rec),
	}
}

var aiLinePrefixRe = regexp.MustCompile(`^\d+\.\s*|^-\s*`)

// aiRecommendations 调LLM产出5条建议，按"[类别]: [建议]"行格式解析
func (r *Recommender) aiRecommendations(ctx context.Context, rec *types.ResumeRecord) ([]Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		MaxTokens:   r.maxTok,
		Temperature: float32(r.temp),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are an expert resume consultant and career coach.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(rec),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("调用建议模型失败: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("建议模型返回空结果")
	}

	return parseAIResponse(resp.Choices[0].Message.Content), nil
}

func buildPrompt(rec *types.ResumeRecord) string {
	skills := rec.Skills
	if len(skills) > 20 {
		skills = skills[:20]
	}
	education := rec.Education
	if len(education) > 2 {
		education = education[:2]
	}

	var b strings.Builder
	b.WriteString("As a professional career coach and resume expert, analyze this resume summary and provide 5 specific, actionable recommendations to improve it:\n\n")
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(skills, ", "))
	fmt.Fprintf(&b, "Experience: %d years\n", rec.TotalExperienceYears)
	fmt.Fprintf(&b, "Education: %s\n", strings.Join(education, ", "))
	fmt.Fprintf(&b, "Sections: %v\n\n", rec.Sections)
	b.WriteString("Provide recommendations in the following format:\n")
	b.WriteString("1. [Category]: [Specific actionable suggestion]\n")
	b.WriteString("2. [Category]: [Specific actionable suggestion]\n...\n\n")
	b.WriteString("Focus on:\n- Content improvements\n- Missing elements\n- Better ways to present information\n- Industry best practices\n")
	return b.String()
}

// parseAIResponse 只保留编号行或破折号行，且冒号前后能拆出类别和建议的
func parseAIResponse(content string) []Recommendation {
	var recs []Recommendation
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		first := line[0]
		if !(first >= '0' && first <= '9') && !strings.HasPrefix(line, "-") {
			continue
		}
		clean := aiLinePrefixRe.ReplaceAllString(line, "")
		category, suggestion, found := strings.Cut(clean, ":")
		if !found {
			continue
		}
		recs = append(recs, Recommendation{
			Category:   strings.TrimSpace(category),
			Suggestion: strings.TrimSpace(suggestion),
		})
	}
	return recs
}

// GenerateSummary 生成简历概况文本，带一句强度评价
func GenerateSummary(rec *types.ResumeRecord) string {
	skillsCount := len(rec.Skills)
	experienceYears := rec.TotalExperienceYears
	educationCount := len(rec.Education)

	summary := fmt.Sprintf("Your resume contains %d identified skills, %d years of experience, and %d education entries. ",
		skillsCount, experienceYears, educationCount)

	switch {
	case skillsCount >= 15 && experienceYears >= 3:
		summary += "Your resume shows strong technical depth and experience."
	case skillsCount >= 10 || experienceYears >= 2:
		summary += "Your resume has a solid foundation."
	default:
		summary += "Your resume could benefit from more detail."
	}
	return summary
}

// GetSkillRecommendations 按目标岗位列出简历里还缺的核心技能。
// 岗位名按子串匹配（"Senior Software Engineer"也能命中）；缺口
// 超过5个优先级为High，否则Medium。
func GetSkillRecommendations(currentSkills []string, targetRole string) *SkillRecommendation {
	targetLower := strings.ToLower(targetRole)

	currentSet := make(map[string]bool, len(currentSkills))
	for _, s := range currentSkills {
		currentSet[strings.ToLower(s)] = true
	}

	recommended := []string{}
	for _, rs := range roleSkills {
		if strings.Contains(targetLower, rs.role) {
			for _, s := range rs.skills {
				if !currentSet[strings.ToLower(s)] {
					recommended = append(recommended, s)
				}
			}
			break
		}
	}

	priority := "Medium"
	if len(recommended) > 5 {
		priority = "High"
	}
	return &SkillRecommendation{
		TargetRole:        targetRole,
		RecommendedSkills: recommended,
		Priority:          priority,
	}
}
