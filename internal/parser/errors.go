package parser

import (
	"errors"
	"fmt"
)

// 基础错误类型。提取与打分层对畸形输入一律降级而不报错，
// 只有格式校验失败会作为用户可见错误向上传播。
var (
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
)

// ExtractError 文本提取阶段的结构化错误
type ExtractError struct {
	Format  string
	Op      string
	BaseErr error
	Detail  string
}

func (e *ExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 格式:%s): %s", e.BaseErr, e.Op, e.Format, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 格式:%s)", e.BaseErr, e.Op, e.Format)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 以支持与哨兵错误比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewUnsupportedFormatError 构造格式不支持错误
func NewUnsupportedFormatError(format string) error {
	return &ExtractError{
		Format:  format,
		Op:      "extract",
		BaseErr: ErrUnsupportedFormat,
	}
}
