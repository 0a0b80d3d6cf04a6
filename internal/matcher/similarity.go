package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// SimilarityStrategy 文本相似度后端。两个实现的输出形态一致
// （[0,100]的百分数），调用方感知不到用的是哪一个。
type SimilarityStrategy interface {
	Name() string
	Similarity(a, b string) float64
}

var similarityTokenRe = regexp.MustCompile(`\w+`)

// 向量化用的英语停用词表
var englishStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can": true, "did": true, "do": true, "does": true, "doing": true,
	"down": true, "during": true, "each": true, "few": true, "for": true,
	"from": true, "further": true, "had": true, "has": true, "have": true,
	"having": true, "he": true, "her": true, "here": true, "hers": true,
	"him": true, "his": true, "how": true, "i": true, "if": true,
	"in": true, "into": true, "is": true, "it": true, "its": true,
	"just": true, "me": true, "more": true, "most": true, "my": true,
	"no": true, "nor": true, "not": true, "now": true, "of": true,
	"off": true, "on": true, "once": true, "only": true, "or": true,
	"other": true, "our": true, "out": true, "over": true, "own": true,
	"same": true, "she": true, "should": true, "so": true, "some": true,
	"such": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "until": true, "up": true, "very": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "who": true, "whom": true, "why": true,
	"will": true, "with": true, "you": true, "your": true,
}

const defaultMaxFeatures = 500

// TFIDFCosine 主相似度后端：对两段文本建TF-IDF向量（去停用词、
// 词表截断到出现频次最高的500个词），取余弦相似度×100。
type TFIDFCosine struct {
	MaxFeatures int
}

// NewTFIDFCosine 创建TF-IDF余弦相似度后端
func NewTFIDFCosine() *TFIDFCosine {
	return &TFIDFCosine{MaxFeatures: defaultMaxFeatures}
}

func (t *TFIDFCosine) Name() string { return "tfidf_cosine" }

// Similarity 实现 SimilarityStrategy
func (t *TFIDFCosine) Similarity(a, b string) float64 {
	tokensA := tokenizeFiltered(a)
	tokensB := tokenizeFiltered(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	tfA := termCounts(tokensA)
	tfB := termCounts(tokensB)

	vocab := selectVocabulary(tfA, tfB, t.maxFeatures())

	// 平滑IDF：idf = ln((1+n)/(1+df)) + 1，n为文档数(2)
	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		vecA[i] = float64(tfA[term]) * idf
		vecB[i] = float64(tfB[term]) * idf
	}

	return cosine(vecA, vecB) * 100
}

func (t *TFIDFCosine) maxFeatures() int {
	if t.MaxFeatures > 0 {
		return t.MaxFeatures
	}
	return defaultMaxFeatures
}

// selectVocabulary 取两篇文档合计词频最高的maxFeatures个词，
// 频次相同按字典序，保证词表确定
func selectVocabulary(tfA, tfB map[string]int, maxFeatures int) []string {
	total := make(map[string]int, len(tfA)+len(tfB))
	for term, c := range tfA {
		total[term] += c
	}
	for term, c := range tfB {
		total[term] += c
	}

	vocab := make([]string, 0, len(total))
	for term := range total {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if total[vocab[i]] != total[vocab[j]] {
			return total[vocab[i]] > total[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Jaccard 回退相似度后端：两段文本词集合的Jaccard系数×100。
// 值域与主后端一致，调用方无感切换。
type Jaccard struct{}

func (j *Jaccard) Name() string { return "jaccard" }

// Similarity 实现 SimilarityStrategy
func (j *Jaccard) Similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	union := make(map[string]bool, len(setA)+len(setB))
	intersection := 0
	for w := range setA {
		union[w] = true
		if setB[w] {
			intersection++
		}
	}
	for w := range setB {
		union[w] = true
	}

	if len(union) == 0 {
		return 0
	}
	return float64(intersection) / float64(len(union)) * 100
}

func tokenizeFiltered(text string) []string {
	var tokens []string
	for _, tok := range similarityTokenRe.FindAllString(strings.ToLower(text), -1) {
		if !englishStopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range similarityTokenRe.FindAllString(strings.ToLower(text), -1) {
		set[tok] = true
	}
	return set
}
