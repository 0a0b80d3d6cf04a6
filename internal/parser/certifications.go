package parser

import "strings"

var certKeywords = []string{"certified", "certification", "certificate", "credential"}

// extractCertifications 收集提到证书关键词的行，原样保留、保持原始顺序，
// 不做去重（同一证书出现多次说明简历本身重复）
func extractCertifications(lines []string) []string {
	var certs []string
	for _, line := range lines {
		low := strings.ToLower(line)
		for _, kw := range certKeywords {
			if strings.Contains(low, kw) {
				certs = append(certs, strings.TrimSpace(line))
				break
			}
		}
	}
	return certs
}
