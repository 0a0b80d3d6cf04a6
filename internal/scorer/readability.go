package scorer

import (
	"regexp"
	"strings"
)

var (
	readabilityWordRe     = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?`)
	readabilitySentenceRe = regexp.MustCompile(`[.!?]+`)
)

// fleschReadingEase 计算Flesch阅读容易度：
//
//	206.835 - 1.015*(词数/句数) - 84.6*(音节数/词数)
//
// 没有可评估的词时返回 ok=false。音节数用元音组启发式估算，
// 对评分分档的精度足够。
func fleschReadingEase(text string) (float64, bool) {
	words := readabilityWordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return 0, false
	}

	sentences := len(readabilitySentenceRe.FindAllString(text, -1))
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	ease := 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
	return ease, true
}

// countSyllables 元音组计数法估算单词音节，词尾的哑音e不算，至少1个音节
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
