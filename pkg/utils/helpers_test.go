package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMD5(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CalculateMD5(nil), "空输入的MD5是固定值")
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6",
		CalculateMD5([]byte("The quick brown fox jumps over the lazy dog")))

	first := CalculateMD5([]byte("resume content"))
	assert.Equal(t, first, CalculateMD5([]byte("resume content")), "相同内容摘要一致")
	assert.NotEqual(t, first, CalculateMD5([]byte("resume content!")))
}

func TestNormalizedExt(t *testing.T) {
	assert.Equal(t, ".pdf", NormalizedExt("resume.PDF"))
	assert.Equal(t, ".docx", NormalizedExt("my.resume.docx"))
	assert.Equal(t, "", NormalizedExt("noextension"))
	assert.Equal(t, ".pdf", NormalizedExt("/tmp/uploads/file.pdf"))
}
