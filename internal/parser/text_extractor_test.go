package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUnsupportedFormat(t *testing.T) {
	e := NewTextExtractor()

	for _, hint := range []string{"txt", ".jpg", "doc", ""} {
		_, err := e.Extract([]byte("data"), hint)
		require.Error(t, err, "格式 %q 应被拒绝", hint)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "错误应能用errors.Is识别")

		var extractErr *ExtractError
		require.True(t, errors.As(err, &extractErr))
		assert.Equal(t, hint, extractErr.Format, "结构化错误保留原始格式提示")
	}
}

func TestExtractFormatHintNormalization(t *testing.T) {
	e := NewTextExtractor()

	// 大小写和点前缀不影响格式识别；垃圾字节走降级路径返回空文本
	for _, hint := range []string{"pdf", ".PDF", "Pdf"} {
		text, err := e.Extract([]byte("not a real pdf"), hint)
		require.NoError(t, err, "格式 %q 应被接受", hint)
		assert.Empty(t, text)
	}
	text, err := e.Extract([]byte("not a real docx"), ".DOCX")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractGarbagePDFReturnsEmpty(t *testing.T) {
	e := NewTextExtractor()

	// 畸形PDF不报错也不panic，返回空文本让下游按低分处理
	garbage := append([]byte("%PDF-1.4\n"), []byte("xref garbage trailer")...)
	text, err := e.Extract(garbage, "pdf")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractGarbageDOCXReturnsEmpty(t *testing.T) {
	e := NewTextExtractor()

	text, err := e.Extract([]byte{0x50, 0x4b, 0x00, 0x00}, "docx")
	require.NoError(t, err)
	assert.Empty(t, text)
}
