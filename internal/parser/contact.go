package parser

import (
	"regexp"

	"resume-match-go/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	// 宽松的国际号码模式，可带国家码、括号区号和常见分隔符
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w\-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w\-]+`)
)

// extractContactInfo 提取联系方式，每个字段取首个匹配，缺失就留空
func extractContactInfo(text string) types.ContactInfo {
	info := types.ContactInfo{}
	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		info.Phone = m
	}
	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedIn = m
	}
	if m := githubRe.FindString(text); m != "" {
		info.GitHub = m
	}
	return info
}
