package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/datatypes"

	"resume-match-go/internal/config"
	"resume-match-go/internal/constants"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/matcher"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/recommender"
	"resume-match-go/internal/scorer"
	"resume-match-go/internal/storage"
	"resume-match-go/internal/storage/models"
	"resume-match-go/internal/types"
	"resume-match-go/pkg/utils"
)

// ErrInvalidUpload 上传请求不合法（扩展名、大小、空文件名）
type ErrInvalidUpload struct {
	Reason string
}

func (e *ErrInvalidUpload) Error() string {
	return e.Reason
}

// ResumeHandler 简历业务处理器，协调提取、解析、评分、匹配和持久化。
// 方法与传输层无关，路由层负责HTTP编解码。
type ResumeHandler struct {
	cfg         *config.Config
	storage     *storage.Storage
	extractor   *parser.TextExtractor
	parser      *parser.ResumeParser
	scorer      *scorer.ATSScorer
	matcher     *matcher.JobMatcher
	recommender *recommender.Recommender
}

// NewResumeHandler 创建简历业务处理器
func NewResumeHandler(cfg *config.Config, store *storage.Storage) *ResumeHandler {
	return &ResumeHandler{
		cfg:         cfg,
		storage:     store,
		extractor:   parser.NewTextExtractor(),
		parser:      parser.NewResumeParser(),
		scorer:      scorer.NewATSScorer(),
		matcher:     matcher.NewJobMatcher(nil),
		recommender: recommender.NewRecommender(cfg.OpenAI),
	}
}

// UploadResponse 上传接口响应：落库ID加上即时分析结果
type UploadResponse struct {
	Success  bool                `json:"success"`
	ResumeID uint                `json:"resume_id,omitempty"`
	Filename string              `json:"filename,omitempty"`
	Status   string              `json:"status"`
	Data     *types.ResumeRecord `json:"data,omitempty"`
	Analysis *UploadAnalysis     `json:"analysis,omitempty"`
}

// UploadAnalysis 上传即时分析，合并请求省一次往返
type UploadAnalysis struct {
	ATSScore        *types.ATSReport             `json:"ats_score"`
	Recommendations []recommender.Recommendation `json:"recommendations"`
}

// HandleUpload 处理简历上传：校验、MD5去重、提取解析、对象存储、
// 落库、广播事件，最后附带即时ATS分析返回
func (h *ResumeHandler) HandleUpload(ctx context.Context, fileBytes []byte, filename string) (*UploadResponse, error) {
	if filename == "" {
		return nil, &ErrInvalidUpload{Reason: "No file selected"}
	}
	ext := utils.NormalizedExt(filename)
	if !h.extAllowed(ext) {
		return nil, &ErrInvalidUpload{Reason: "Invalid file type. Only PDF and DOCX allowed"}
	}
	maxBytes := int64(h.cfg.Upload.MaxSizeMB) * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = constants.MaxUploadBytes
	}
	if int64(len(fileBytes)) > maxBytes {
		return nil, &ErrInvalidUpload{Reason: fmt.Sprintf("File too large. Maximum size is %dMB", maxBytes/(1024*1024))}
	}

	fileMD5 := utils.CalculateMD5(fileBytes)

	// 原子去重：同一文件内容只处理一次
	if h.storage.Redis != nil {
		exists, err := h.storage.Redis.CheckAndAddRawFileMD5(ctx, fileMD5)
		if err != nil {
			logger.Error().Err(err).Str("md5", fileMD5).Msg("查询文件MD5去重集合失败")
			return nil, fmt.Errorf("检查文件重复性失败: %w", err)
		}
		if exists {
			logger.Info().Str("md5", fileMD5).Str("filename", filename).Msg("检测到重复文件，跳过处理")
			return &UploadResponse{
				Success: true,
				Status:  constants.StatusDuplicate,
			}, nil
		}
	}

	// 提取文本。不支持的格式已被扩展名白名单挡掉，这里的错误属于异常
	plainText, err := h.extractor.Extract(fileBytes, ext)
	if err != nil {
		h.rollbackMD5(ctx, fileMD5)
		return nil, fmt.Errorf("提取简历文本失败: %w", err)
	}

	rec := h.parser.Parse(plainText)

	uuidV7, err := uuid.NewV7()
	if err != nil {
		h.rollbackMD5(ctx, fileMD5)
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	resumeUUID := uuidV7.String()

	// 原始文件落对象存储，MinIO降级时跳过
	var objectKey string
	if h.storage.MinIO != nil {
		objectKey, err = h.storage.MinIO.UploadResumeFile(ctx, resumeUUID, ext, fileBytes)
		if err != nil {
			h.rollbackMD5(ctx, fileMD5)
			return nil, fmt.Errorf("上传简历到MinIO失败: %w", err)
		}
	}

	model, err := models.NewResumeModel(rec, filename, fileMD5, objectKey, constants.StatusAnalyzed)
	if err != nil {
		h.rollbackMD5(ctx, fileMD5)
		return nil, err
	}
	resumeID, err := h.storage.MySQL.SaveResume(ctx, model)
	if err != nil {
		h.rollbackMD5(ctx, fileMD5)
		return nil, err
	}

	// 广播上传事件，失败不影响主流程
	if h.storage.RabbitMQ != nil {
		msg := &storage.ResumeUploadedMessage{
			ResumeID:         resumeID,
			ResumeUUID:       resumeUUID,
			OriginalFilename: filename,
			OriginalFilePath: objectKey,
			RawFileMD5:       fileMD5,
			UploadTime:       time.Now(),
		}
		if err := h.storage.RabbitMQ.PublishResumeUploaded(ctx, msg); err != nil {
			logger.Warn().Err(err).Uint("resume_id", resumeID).Msg("发布简历上传事件失败")
		}
	}

	h.logAnalytics(ctx, resumeID, "resume_uploaded", map[string]interface{}{
		"filename":    filename,
		"skill_count": len(rec.Skills),
	})

	// 即时分析：合并请求，省一次往返
	atsReport := h.scorer.Analyze(rec)
	basicRecs := h.recommender.GetRecommendations(rec)

	if h.storage.RabbitMQ != nil {
		analyzed := &storage.ResumeAnalyzedMessage{
			ResumeID:     resumeID,
			ATSScore:     atsReport.OverallScore,
			ATSGrade:     atsReport.Grade,
			SkillCount:   len(rec.Skills),
			AnalyzedTime: time.Now(),
		}
		if err := h.storage.RabbitMQ.PublishResumeAnalyzed(ctx, analyzed); err != nil {
			logger.Warn().Err(err).Uint("resume_id", resumeID).Msg("发布简历分析事件失败")
		}
	}

	return &UploadResponse{
		Success:  true,
		ResumeID: resumeID,
		Filename: filename,
		Status:   constants.StatusAnalyzed,
		Data:     rec,
		Analysis: &UploadAnalysis{
			ATSScore:        atsReport,
			Recommendations: basicRecs,
		},
	}, nil
}

func (h *ResumeHandler) extAllowed(ext string) bool {
	for _, allowed := range h.cfg.Upload.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// rollbackMD5 处理失败时撤掉去重登记，同一文件重传才能生效
func (h *ResumeHandler) rollbackMD5(ctx context.Context, fileMD5 string) {
	if h.storage.Redis == nil {
		return
	}
	if err := h.storage.Redis.RemoveRawFileMD5(ctx, fileMD5); err != nil {
		logger.Warn().Err(err).Str("md5", fileMD5).Msg("回滚文件MD5登记失败")
	}
}

// AnalyzeResponse 详细分析响应
type AnalyzeResponse struct {
	Success         bool                         `json:"success"`
	ResumeData      *types.ResumeRecord          `json:"resume_data"`
	ATSScore        *types.ATSReport             `json:"ats_score"`
	Recommendations []recommender.Recommendation `json:"recommendations"`
}

// HandleAnalyze 取库里的简历重新跑ATS分析和规则建议
func (h *ResumeHandler) HandleAnalyze(ctx context.Context, resumeID uint) (*AnalyzeResponse, error) {
	rec, err := h.loadRecord(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	h.logAnalytics(ctx, resumeID, "resume_analyzed", nil)

	return &AnalyzeResponse{
		Success:         true,
		ResumeData:      rec,
		ATSScore:        h.scorer.Analyze(rec),
		Recommendations: h.recommender.GetRecommendations(rec),
	}, nil
}

// MatchResponse 匹配接口响应
type MatchResponse struct {
	Success     bool               `json:"success"`
	MatchResult *types.MatchResult `json:"match_result"`
}

// HandleMatch 简历和JD匹配，结果追加入匹配历史
func (h *ResumeHandler) HandleMatch(ctx context.Context, resumeID uint, jobDescription string) (*MatchResponse, error) {
	rec, err := h.loadRecord(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	result := h.matcher.Match(rec, jobDescription)

	matchModel, err := models.NewJobMatchModel(resumeID, jobDescription, result)
	if err != nil {
		return nil, err
	}
	if err := h.storage.MySQL.SaveJobMatch(ctx, matchModel); err != nil {
		return nil, err
	}

	h.logAnalytics(ctx, resumeID, "job_matched", map[string]interface{}{
		"overall_score": result.OverallScore,
	})

	return &MatchResponse{Success: true, MatchResult: result}, nil
}

// SkillGapResponse 技能差距分析响应
type SkillGapResponse struct {
	Success  bool            `json:"success"`
	SkillGap *types.SkillGap `json:"skill_gap"`
}

// HandleSkillGap 简历与JD的技能差距分析，纯计算不落库
func (h *ResumeHandler) HandleSkillGap(ctx context.Context, resumeID uint, jobDescription string) (*SkillGapResponse, error) {
	rec, err := h.loadRecord(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return &SkillGapResponse{
		Success:  true,
		SkillGap: h.matcher.AnalyzeSkillGap(rec, jobDescription),
	}, nil
}

// RecommendationsResponse 细化建议响应
type RecommendationsResponse struct {
	Success         bool                                 `json:"success"`
	Recommendations *recommender.DetailedRecommendations `json:"recommendations"`
}

// HandleRecommendations 规则+AI的细化改进建议
func (h *ResumeHandler) HandleRecommendations(ctx context.Context, resumeID uint) (*RecommendationsResponse, error) {
	rec, err := h.loadRecord(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return &RecommendationsResponse{
		Success:         true,
		Recommendations: h.recommender.GetDetailedRecommendations(ctx, rec),
	}, nil
}

// ResumeStats 仪表盘统计
type ResumeStats struct {
	TotalSkills     int                              `json:"total_skills"`
	YearsExperience int                              `json:"years_experience"`
	Certifications  int                              `json:"certifications"`
	SkillCategories map[types.SkillCategory][]string `json:"skill_categories"`
}

// StatsResponse 统计接口响应
type StatsResponse struct {
	Success bool         `json:"success"`
	Stats   *ResumeStats `json:"stats"`
}

// HandleStats 简历的仪表盘统计数据
func (h *ResumeHandler) HandleStats(ctx context.Context, resumeID uint) (*StatsResponse, error) {
	rec, err := h.loadRecord(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		Success: true,
		Stats: &ResumeStats{
			TotalSkills:     len(rec.Skills),
			YearsExperience: rec.TotalExperienceYears,
			Certifications:  len(rec.Certifications),
			SkillCategories: rec.SkillCategories,
		},
	}, nil
}

// ATSScoreResponse 详细ATS分析响应
type ATSScoreResponse struct {
	Success     bool                     `json:"success"`
	ATSAnalysis *types.DetailedATSReport `json:"ats_analysis"`
}

// HandleATSScore 详细ATS分析。简历内容不可变、计算确定，结果
// 在Redis缓存一层。
func (h *ResumeHandler) HandleATSScore(ctx context.Context, resumeID uint) (*ATSScoreResponse, error) {
	cacheKey := strconv.FormatUint(uint64(resumeID), 10)

	if h.storage.Redis != nil {
		cached, err := h.storage.Redis.GetCachedATSReport(ctx, cacheKey)
		if err == nil {
			return &ATSScoreResponse{Success: true, ATSAnalysis: cached}, nil
		}
		if err != storage.ErrNotFound {
			logger.Warn().Err(err).Uint("resume_id", resumeID).Msg("读取ATS报告缓存失败")
		}
	}

	rec, err := h.loadRecord(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	report := h.scorer.DetailedAnalysis(rec)

	if h.storage.Redis != nil {
		if err := h.storage.Redis.CacheATSReport(ctx, cacheKey, report); err != nil {
			logger.Warn().Err(err).Uint("resume_id", resumeID).Msg("写入ATS报告缓存失败")
		}
	}

	return &ATSScoreResponse{Success: true, ATSAnalysis: report}, nil
}

// ListResponse 简历列表响应
type ListResponse struct {
	Success bool                  `json:"success"`
	Resumes []types.ResumeSummary `json:"resumes"`
}

// HandleListResumes 按上传时间倒序列出全部简历
func (h *ResumeHandler) HandleListResumes(ctx context.Context) (*ListResponse, error) {
	summaries, err := h.storage.MySQL.ListResumes(ctx)
	if err != nil {
		return nil, err
	}
	return &ListResponse{Success: true, Resumes: summaries}, nil
}

// MatchHistoryResponse 匹配历史响应
type MatchHistoryResponse struct {
	Success bool                      `json:"success"`
	Matches []types.MatchHistoryEntry `json:"matches"`
}

// HandleMatchHistory 某简历的历史匹配记录，按匹配时间倒序
func (h *ResumeHandler) HandleMatchHistory(ctx context.Context, resumeID uint) (*MatchHistoryResponse, error) {
	if _, err := h.storage.MySQL.GetResume(ctx, resumeID); err != nil {
		return nil, err
	}
	entries, err := h.storage.MySQL.ListJobMatches(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return &MatchHistoryResponse{Success: true, Matches: entries}, nil
}

// SkillRecommendationResponse 目标岗位技能建议响应
type SkillRecommendationResponse struct {
	Success        bool                             `json:"success"`
	Recommendation *recommender.SkillRecommendation `json:"recommendation"`
}

// HandleSkillRecommendations 按目标岗位给出技能补齐建议
func (h *ResumeHandler) HandleSkillRecommendations(ctx context.Context, resumeID uint, targetRole string) (*SkillRecommendationResponse, error) {
	rec, err := h.loadRecord(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return &SkillRecommendationResponse{
		Success:        true,
		Recommendation: recommender.GetSkillRecommendations(rec.Skills, targetRole),
	}, nil
}

// loadRecord 取库里的简历并还原成ResumeRecord
func (h *ResumeHandler) loadRecord(ctx context.Context, resumeID uint) (*types.ResumeRecord, error) {
	model, err := h.storage.MySQL.GetResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	return model.ToRecord(), nil
}

// logAnalytics 记分析事件，失败只告警
func (h *ResumeHandler) logAnalytics(ctx context.Context, resumeID uint, eventType string, data map[string]interface{}) {
	eventData, err := json.Marshal(data)
	if err != nil {
		eventData = []byte("{}")
	}
	event := &models.AnalyticsEvent{
		ResumeID:  resumeID,
		EventType: eventType,
		EventData: datatypes.JSON(eventData),
	}
	if err := h.storage.MySQL.LogAnalytics(ctx, event); err != nil {
		logger.Warn().Err(err).Uint("resume_id", resumeID).Str("event", eventType).Msg("记录分析事件失败")
	}
}
