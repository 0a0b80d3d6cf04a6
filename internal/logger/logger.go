package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger 全局日志实例，Init之前就可用（默认配置）
var Logger = log.Logger

// Config 日志系统配置
type Config struct {
	// Level 日志级别：debug/info/warn/error
	Level string `json:"level" yaml:"level"`
	// Format json（机器可读）或 pretty（控制台人类可读）
	Format string `json:"format" yaml:"format"`
	// TimeFormat 时间戳格式，空值用RFC3339
	TimeFormat string `json:"time_format" yaml:"time_format"`
	// ReportCaller 是否带调用位置（文件:行号）
	ReportCaller bool `json:"report_caller" yaml:"report_caller"`
}

// Init 按配置初始化全局日志。级别解析失败时回退到info。
func Init(config Config) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if config.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: config.TimeFormat,
		}
	}

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	ctxLogger := zerolog.New(output).Level(level).With().Timestamp()
	if config.ReportCaller {
		ctxLogger = ctxLogger.Caller()
	}

	Logger = ctxLogger.Logger()
	log.Logger = Logger
}

// Debug 开始一条debug级日志事件
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info 开始一条info级日志事件
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn 开始一条warn级日志事件
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error 开始一条error级日志事件
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal 开始一条fatal级日志事件，记录后进程退出
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// Ctx 取出上下文中携带的日志实例
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext 把全局日志实例塞进上下文
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
