package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/storage/models"
	"resume-match-go/internal/types"
)

var mysqlTracer = otel.Tracer("resume-match-go/storage/mysql")

// ErrResumeNotFound 按ID查不到简历
var ErrResumeNotFound = errors.New("简历不存在")

type spanCtxKey struct{}

// gormTracingPlugin GORM插件，给每个CRUD操作挂OpenTelemetry span
type gormTracingPlugin struct {
	tracer trace.Tracer
	dbName string
}

func newGormTracingPlugin(dbName string) *gormTracingPlugin {
	return &gormTracingPlugin{tracer: mysqlTracer, dbName: dbName}
}

func (p *gormTracingPlugin) Name() string {
	return "gormOpenTelemetryPlugin"
}

// Initialize 注册CRUD前后回调
func (p *gormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	registrations := []struct {
		op     string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"CREATE",
			func(name string, fn func(*gorm.DB)) error {
				return cb.Create().Before("gorm:create").Register(name, fn)
			},
			func(name string, fn func(*gorm.DB)) error {
				return cb.Create().After("gorm:create").Register(name, fn)
			}},
		{"SELECT",
			func(name string, fn func(*gorm.DB)) error {
				return cb.Query().Before("gorm:query").Register(name, fn)
			},
			func(name string, fn func(*gorm.DB)) error {
				return cb.Query().After("gorm:query").Register(name, fn)
			}},
		{"UPDATE",
			func(name string, fn func(*gorm.DB)) error {
				return cb.Update().Before("gorm:update").Register(name, fn)
			},
			func(name string, fn func(*gorm.DB)) error {
				return cb.Update().After("gorm:update").Register(name, fn)
			}},
		{"DELETE",
			func(name string, fn func(*gorm.DB)) error {
				return cb.Delete().Before("gorm:delete").Register(name, fn)
			},
			func(name string, fn func(*gorm.DB)) error {
				return cb.Delete().After("gorm:delete").Register(name, fn)
			}},
	}
	for _, r := range registrations {
		op := r.op
		if err := r.before("otel:before_"+op, p.before(op)); err != nil {
			return err
		}
		if err := r.after("otel:after_"+op, p.after()); err != nil {
			return err
		}
	}
	return nil
}

func (p *gormTracingPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		tableName := db.Statement.Table
		if tableName == "" {
			tableName = "unknown"
		}

		newCtx, span := p.tracer.Start(ctx, fmt.Sprintf("%s %s", operation, tableName),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				semconv.DBSystemMySQL,
				attribute.String("db.name", p.dbName),
				attribute.String("db.operation", operation),
				attribute.String("db.sql.table", tableName),
			),
		)
		db.Statement.Context = context.WithValue(newCtx, spanCtxKey{}, span)
	}
}

func (p *gormTracingPlugin) after() func(*gorm.DB) {
	return func(db *gorm.DB) {
		span, ok := db.Statement.Context.Value(spanCtxKey{}).(trace.Span)
		if !ok {
			return
		}
		defer span.End()

		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))

		switch {
		case db.Error == nil:
			span.SetStatus(codes.Ok, "")
		case errors.Is(db.Error, gorm.ErrRecordNotFound):
			// 查不到记录是业务正常路径，不标error
			span.SetAttributes(attribute.String("error.type", "record_not_found"))
			span.SetStatus(codes.Ok, "record not found")
		default:
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
		}
	}
}

// MySQL 关系数据库访问层
type MySQL struct {
	db  *gorm.DB
	cfg *config.MySQLConfig
}

// NewMySQL 创建MySQL客户端：建连、配连接池、注册追踪插件、自动迁移表结构
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		cfg.ConnectTimeoutSeconds, cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds)

	var logLevel gormlogger.LogLevel
	switch cfg.LogLevel {
	case 1:
		logLevel = gormlogger.Silent
	case 2:
		logLevel = gormlogger.Error
	case 3:
		logLevel = gormlogger.Warn
	default:
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(logLevel),
		PrepareStmt:                              true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute)

	if err := db.Use(newGormTracingPlugin(cfg.Database)); err != nil {
		return nil, fmt.Errorf("注册追踪插件失败: %w", err)
	}

	m := &MySQL{db: db, cfg: cfg}
	if err := m.autoMigrateSchema(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("自动迁移数据库结构失败: %w", err)
	}

	logger.Info().Str("database", cfg.Database).Msg("成功连接到MySQL并自动迁移数据库结构")
	return m, nil
}

// autoMigrateSchema 静默迁移全部表结构，避免启动时刷SQL日志
func (m *MySQL) autoMigrateSchema() error {
	silentDB := m.db.Session(&gorm.Session{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	return silentDB.AutoMigrate(
		&models.Resume{},
		&models.JobMatch{},
		&models.AnalyticsEvent{},
	)
}

// DB 返回GORM实例，给需要原生查询的调用方
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close 关闭底层连接池
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveResume 落库一条简历行，返回自增ID
func (m *MySQL) SaveResume(ctx context.Context, resume *models.Resume) (uint, error) {
	if err := m.db.WithContext(ctx).Create(resume).Error; err != nil {
		return 0, fmt.Errorf("保存简历失败: %w", err)
	}
	return resume.ID, nil
}

// GetResume 按ID取简历行，查不到返回ErrResumeNotFound
func (m *MySQL) GetResume(ctx context.Context, resumeID uint) (*models.Resume, error) {
	var resume models.Resume
	err := m.db.WithContext(ctx).First(&resume, resumeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询简历失败: %w", err)
	}
	return &resume, nil
}

// ListResumes 按上传时间倒序列出全部简历的摘要
func (m *MySQL) ListResumes(ctx context.Context) ([]types.ResumeSummary, error) {
	var rows []models.Resume
	err := m.db.WithContext(ctx).
		Select("id", "filename", "upload_date").
		Order("upload_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询简历列表失败: %w", err)
	}

	summaries := make([]types.ResumeSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, types.ResumeSummary{
			ID:         row.ID,
			Filename:   row.Filename,
			UploadDate: row.UploadDate,
		})
	}
	return summaries, nil
}

// SaveJobMatch 追加一条匹配记录
func (m *MySQL) SaveJobMatch(ctx context.Context, match *models.JobMatch) error {
	if err := m.db.WithContext(ctx).Create(match).Error; err != nil {
		return fmt.Errorf("保存匹配记录失败: %w", err)
	}
	return nil
}

// ListJobMatches 按匹配时间倒序取某简历的全部历史匹配
func (m *MySQL) ListJobMatches(ctx context.Context, resumeID uint) ([]types.MatchHistoryEntry, error) {
	var rows []models.JobMatch
	err := m.db.WithContext(ctx).
		Where("resume_id = ?", resumeID).
		Order("match_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询匹配历史失败: %w", err)
	}

	entries := make([]types.MatchHistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToHistoryEntry())
	}
	return entries, nil
}

// LogAnalytics 记一条分析事件，失败只记日志不打断主流程由调用方决定
func (m *MySQL) LogAnalytics(ctx context.Context, event *models.AnalyticsEvent) error {
	if err := m.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("记录分析事件失败: %w", err)
	}
	return nil
}
