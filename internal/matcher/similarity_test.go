package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFCosineIdenticalTexts(t *testing.T) {
	s := NewTFIDFCosine()
	text := "golang backend services with redis caching"
	assert.InDelta(t, 100.0, s.Similarity(text, text), 0.001, "相同文本相似度为100")
}

func TestTFIDFCosineDisjointTexts(t *testing.T) {
	s := NewTFIDFCosine()
	assert.Zero(t, s.Similarity("apple banana cherry", "dog elephant fox"),
		"完全不相交的文本相似度为0")
}

func TestTFIDFCosineEmptyInput(t *testing.T) {
	s := NewTFIDFCosine()
	assert.Zero(t, s.Similarity("", "some text"))
	assert.Zero(t, s.Similarity("some text", ""))
	// 纯停用词过滤后没有词参与
	assert.Zero(t, s.Similarity("the a an of", "some text"))
}

func TestTFIDFCosinePartialOverlap(t *testing.T) {
	s := NewTFIDFCosine()
	score := s.Similarity("python developer with docker", "python engineer with kubernetes")

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func TestTFIDFCosineDeterministic(t *testing.T) {
	s := NewTFIDFCosine()
	a := "golang services grpc kafka redis postgres"
	b := "python services flask celery redis mysql"
	first := s.Similarity(a, b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Similarity(a, b), "重复计算结果必须一致")
	}
}

func TestTFIDFCosineMaxFeaturesTruncation(t *testing.T) {
	s := &TFIDFCosine{MaxFeatures: 1}
	// 词表截断到合计频次最高的一个词，重叠词被保留时仍有相似度
	score := s.Similarity("shared shared unique1", "shared shared unique2")
	assert.Greater(t, score, 0.0)
}

func TestJaccardKnownValues(t *testing.T) {
	j := &Jaccard{}

	// 交集{b,c}=2，并集{a,b,c,d}=4
	assert.InDelta(t, 50.0, j.Similarity("a b c", "b c d"), 0.001)
	assert.InDelta(t, 100.0, j.Similarity("x y", "y x"), 0.001, "词序无关")
	assert.Zero(t, j.Similarity("one two", "three four"))
	assert.Zero(t, j.Similarity("", ""))
}

func TestNewJobMatcherDefaultStrategy(t *testing.T) {
	m := NewJobMatcher(nil)
	require.NotNil(t, m.similarity, "nil策略回落到默认后端")
	assert.Equal(t, "tfidf_cosine", m.similarity.Name())

	m = NewJobMatcher(&Jaccard{})
	assert.Equal(t, "jaccard", m.similarity.Name())
}
