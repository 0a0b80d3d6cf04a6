package utils

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// CalculateMD5 计算字节流的MD5十六进制摘要
func CalculateMD5(data []byte) string {
	hasher := md5.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// NormalizedExt 取文件名的小写扩展名（含点）
func NormalizedExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
