package parser

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	dslipakpdf "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog"

	"resume-match-go/internal/logger"
)

// TextExtractor 把PDF/DOCX二进制转为纯文本。
// PDF走双引擎：先用按行重组的引擎做版式感知提取，结果为空白时回退到
// 简单流式引擎。两个引擎都失败时返回空串而不是报错——空文本简历要
// 继续流过打分链路（得到低分），不能让请求崩掉。
type TextExtractor struct {
	log zerolog.Logger
}

// NewTextExtractor 创建文本提取器
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{log: logger.Logger.With().Str("component", "text_extractor").Logger()}
}

// Extract 根据格式提示提取纯文本。formatHint 取 "pdf" 或 "docx"，
// 大小写不敏感，可带点前缀。其余格式返回 ErrUnsupportedFormat。
func (e *TextExtractor) Extract(fileBytes []byte, formatHint string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(formatHint, ".")) {
	case "pdf":
		return e.extractPDF(fileBytes), nil
	case "docx":
		return e.extractDOCX(fileBytes), nil
	default:
		return "", NewUnsupportedFormatError(formatHint)
	}
}

// extractPDF 双引擎PDF提取。版式感知引擎在某些畸形PDF上会静默产出
// 空文本，所以空白结果触发回退而不是直接返回。
func (e *TextExtractor) extractPDF(data []byte) string {
	text := e.extractPDFByRows(data)
	if strings.TrimSpace(text) != "" {
		return text
	}
	e.log.Debug().Msg("主引擎提取结果为空，回退到流式引擎")
	return e.extractPDFPlain(data)
}

// extractPDFByRows 主引擎：逐页按行重组文本，页与页之间用换行分隔
func (e *TextExtractor) extractPDFByRows(data []byte) (text string) {
	// 底层PDF库在损坏的xref表上会panic，吞掉并按失败处理
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Interface("panic", r).Msg("主PDF引擎panic，按提取失败处理")
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.log.Debug().Err(err).Msg("主PDF引擎打开文件失败")
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// extractPDFPlain 回退引擎：整文档纯文本流
func (e *TextExtractor) extractPDFPlain(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Interface("panic", r).Msg("回退PDF引擎panic，返回空文本")
			text = ""
		}
	}()

	reader, err := dslipakpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.log.Debug().Err(err).Msg("回退PDF引擎打开文件失败")
		return ""
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		e.log.Debug().Err(err).Msg("回退PDF引擎提取文本失败")
		return ""
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return ""
	}
	return buf.String()
}

var (
	docxParagraphEndRe = regexp.MustCompile(`</w:p>`)
	docxTagRe          = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX 提取DOCX文本：段落之间以换行分隔，失败同样吞掉返回空串
func (e *TextExtractor) extractDOCX(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn().Interface("panic", r).Msg("DOCX引擎panic，返回空文本")
			text = ""
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.log.Debug().Err(err).Msg("解析DOCX失败")
		return ""
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	// 文档内容是WordprocessingML，段落结束标记转成换行后去掉其余标签
	content = docxParagraphEndRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
