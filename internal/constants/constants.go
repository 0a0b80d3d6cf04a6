package constants

import "time"

// 简历处理状态，贯穿上传到分析完成的整个流水线
const (
	StatusUploaded  = "UPLOADED"
	StatusParsed    = "PARSED"
	StatusAnalyzed  = "ANALYZED"
	StatusFailed    = "PROCESSING_FAILED"
	StatusDuplicate = "DUPLICATE_FILE_SKIPPED"
)

// Redis Key 格式常量
// 统一命名规范: resume:{entity}:{unique_id}
const (
	// AppPrefix 所有Redis Key的应用前缀
	AppPrefix = "resume"

	// KeyFileMD5Set 原始文件MD5去重集合 (SET)
	// 格式: resume:file:dedup_set
	KeyFileMD5Set = AppPrefix + ":file:dedup_set"

	// KeyATSReportCache 详细ATS报告缓存 (STRING, JSON值)
	// 格式: resume:ats:report:{resumeID}
	KeyATSReportCache = AppPrefix + ":ats:report:%s"

	// ATSReportCacheDuration 详细ATS报告的缓存时长。简历内容不可变，
	// 报告计算是确定性的，过期只为控制内存占用。
	ATSReportCacheDuration = 24 * time.Hour
)

// 上传限制
const (
	// MaxUploadBytes 单个简历文件的大小上限（16MB）
	MaxUploadBytes = 16 * 1024 * 1024
)
