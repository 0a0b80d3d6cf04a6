package storage

import "time"

// ResumeUploadedMessage 简历上传事件，发往简历事件交换机
type ResumeUploadedMessage struct {
	ResumeID         uint      `json:"resume_id"`
	ResumeUUID       string    `json:"resume_uuid"`
	OriginalFilename string    `json:"original_filename"`
	OriginalFilePath string    `json:"original_file_path"` // MinIO对象键
	RawFileMD5       string    `json:"raw_file_md5"`
	UploadTime       time.Time `json:"upload_time"`
}

// ResumeAnalyzedMessage 简历分析完成事件
type ResumeAnalyzedMessage struct {
	ResumeID     uint      `json:"resume_id"`
	ATSScore     float64   `json:"ats_score"`
	ATSGrade     string    `json:"ats_grade"`
	SkillCount   int       `json:"skill_count"`
	AnalyzedTime time.Time `json:"analyzed_time"`
}
