package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"resume-match-go/internal/types"
)

// Resume 简历主表。结构化字段以JSON列存储，原文以TEXT存储，
// 落库后整行只读。
type Resume struct {
	ID               uint           `gorm:"primaryKey;autoIncrement"`
	Filename         string         `gorm:"type:varchar(255);not null"`
	UploadDate       time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_resumes_upload_date"`
	RawFileMD5       string         `gorm:"type:char(32);index:idx_resumes_raw_file_md5"`
	OriginalFilePath string         `gorm:"type:varchar(1024)"` // MinIO对象路径
	Status           string         `gorm:"type:varchar(50);default:'UPLOADED';index:idx_resumes_status"`
	RawText          string         `gorm:"type:mediumtext"`
	ContactInfo      datatypes.JSON `gorm:"type:json"`
	Skills           datatypes.JSON `gorm:"type:json"`
	SkillCategories  datatypes.JSON `gorm:"type:json"`
	Experience       datatypes.JSON `gorm:"type:json"`
	Education        datatypes.JSON `gorm:"type:json"`
	Certifications   datatypes.JSON `gorm:"type:json"`
	TotalExperience  int            `gorm:"not null;default:0"`
	Keywords         datatypes.JSON `gorm:"type:json"`
	Sections         datatypes.JSON `gorm:"type:json"`
	SearchResults    datatypes.JSON `gorm:"type:json"`
	CreatedAt        time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt        time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (Resume) TableName() string {
	return "resumes"
}

// JobMatch 匹配记录表，按次追加
type JobMatch struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement"`
	ResumeID             uint           `gorm:"not null;index:idx_job_matches_resume_id"`
	JobDescription       string         `gorm:"type:text;not null"`
	MatchDate            time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_job_matches_match_date"`
	OverallScore         float64        `gorm:"not null;default:0"`
	SimilarityScore      float64        `gorm:"not null;default:0"`
	SkillMatchPercentage float64        `gorm:"not null;default:0"`
	ExperienceMatch      float64        `gorm:"not null;default:0"`
	RequiredExperience   int            `gorm:"not null;default:0"`
	CandidateExperience  int            `gorm:"not null;default:0"`
	MatchedSkills        datatypes.JSON `gorm:"type:json"`
	MissingSkills        datatypes.JSON `gorm:"type:json"`
	Recommendation       string         `gorm:"type:text"`

	Resume *Resume `gorm:"foreignKey:ResumeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (JobMatch) TableName() string {
	return "job_matches"
}

// AnalyticsEvent 分析事件流水表
type AnalyticsEvent struct {
	ID        uint           `gorm:"primaryKey;autoIncrement"`
	ResumeID  uint           `gorm:"index:idx_analytics_resume_id"`
	EventType string         `gorm:"type:varchar(100);not null;index:idx_analytics_event_type"`
	EventData datatypes.JSON `gorm:"type:json"`
	EventDate time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

// NewResumeModel 把解析结果打包成数据库行
func NewResumeModel(rec *types.ResumeRecord, filename, rawFileMD5, originalFilePath, status string) (*Resume, error) {
	contactInfo, err := toJSON(rec.ContactInfo)
	if err != nil {
		return nil, err
	}
	skills, err := toJSON(rec.Skills)
	if err != nil {
		return nil, err
	}
	skillCategories, err := toJSON(rec.SkillCategories)
	if err != nil {
		return nil, err
	}
	experience, err := toJSON(rec.Experience)
	if err != nil {
		return nil, err
	}
	education, err := toJSON(rec.Education)
	if err != nil {
		return nil, err
	}
	certifications, err := toJSON(rec.Certifications)
	if err != nil {
		return nil, err
	}
	keywords, err := toJSON(rec.Keywords)
	if err != nil {
		return nil, err
	}
	sections, err := toJSON(rec.Sections)
	if err != nil {
		return nil, err
	}
	searchResults, err := toJSON(rec.SearchLinks)
	if err != nil {
		return nil, err
	}

	return &Resume{
		Filename:         filename,
		RawFileMD5:       rawFileMD5,
		OriginalFilePath: originalFilePath,
		Status:           status,
		RawText:          rec.RawText,
		ContactInfo:      contactInfo,
		Skills:           skills,
		SkillCategories:  skillCategories,
		Experience:       experience,
		Education:        education,
		Certifications:   certifications,
		TotalExperience:  rec.TotalExperienceYears,
		Keywords:         keywords,
		Sections:         sections,
		SearchResults:    searchResults,
	}, nil
}

// ToRecord 把数据库行还原成ResumeRecord。损坏的JSON列按空值处理，
// 不让单列问题拖垮整行。
func (r *Resume) ToRecord() *types.ResumeRecord {
	rec := &types.ResumeRecord{
		RawText:              r.RawText,
		TotalExperienceYears: r.TotalExperience,
	}
	fromJSON(r.ContactInfo, &rec.ContactInfo)
	fromJSON(r.Skills, &rec.Skills)
	fromJSON(r.SkillCategories, &rec.SkillCategories)
	fromJSON(r.Experience, &rec.Experience)
	fromJSON(r.Education, &rec.Education)
	fromJSON(r.Certifications, &rec.Certifications)
	fromJSON(r.Keywords, &rec.Keywords)
	fromJSON(r.Sections, &rec.Sections)
	fromJSON(r.SearchResults, &rec.SearchLinks)
	return rec
}

// NewJobMatchModel 把匹配结果打包成数据库行
func NewJobMatchModel(resumeID uint, jobDescription string, result *types.MatchResult) (*JobMatch, error) {
	matched, err := toJSON(result.MatchedSkills)
	if err != nil {
		return nil, err
	}
	missing, err := toJSON(result.MissingSkills)
	if err != nil {
		return nil, err
	}

	return &JobMatch{
		ResumeID:             resumeID,
		JobDescription:       jobDescription,
		OverallScore:         result.OverallScore,
		SimilarityScore:      result.SimilarityScore,
		SkillMatchPercentage: result.SkillMatchPct,
		ExperienceMatch:      result.ExperienceMatch,
		RequiredExperience:   result.RequiredExperience,
		CandidateExperience:  result.CandidateExperience,
		MatchedSkills:        matched,
		MissingSkills:        missing,
		Recommendation:       result.Recommendation,
	}, nil
}

// ToHistoryEntry 把匹配行转成对外的历史记录
func (m *JobMatch) ToHistoryEntry() types.MatchHistoryEntry {
	entry := types.MatchHistoryEntry{
		ID:             m.ID,
		ResumeID:       m.ResumeID,
		JobDescription: m.JobDescription,
		MatchDate:      m.MatchDate,
		Result: types.MatchResult{
			OverallScore:        m.OverallScore,
			SimilarityScore:     m.SimilarityScore,
			SkillMatchPct:       m.SkillMatchPercentage,
			ExperienceMatch:     m.ExperienceMatch,
			RequiredExperience:  m.RequiredExperience,
			CandidateExperience: m.CandidateExperience,
			Recommendation:      m.Recommendation,
		},
	}
	fromJSON(m.MatchedSkills, &entry.Result.MatchedSkills)
	fromJSON(m.MissingSkills, &entry.Result.MissingSkills)
	return entry
}

func toJSON(v interface{}) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("序列化JSON列失败: %w", err)
	}
	return datatypes.JSON(data), nil
}

func fromJSON(data datatypes.JSON, dest interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, dest)
}
