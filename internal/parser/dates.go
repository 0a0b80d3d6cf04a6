package parser

import (
	"regexp"
	"strconv"
	"strings"

	"resume-match-go/internal/types"
)

var (
	// 两种日期区间写法："2018-2020"、"2021 - present" 与 "Jan 2018 - Mar 2020"
	yearRangeRe  = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
	monthRangeRe = regexp.MustCompile(`(?i)(\w+\s+\d{4})\s*[-–]\s*(\w+\s+\d{4}|present|current)`)
	// 显式年限声明："5+ years of experience"
	explicitYearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of)?\s*experience`)
)

const experienceContextLimit = 200

// extractExperience 逐行扫描日期区间，每个命中记录上下文窗口（命中行±2行）
func extractExperience(lines []string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	patterns := []*regexp.Regexp{yearRangeRe, monthRangeRe}

	for i, line := range lines {
		for _, re := range patterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			lo := i - 2
			if lo < 0 {
				lo = 0
			}
			hi := i + 3
			if hi > len(lines) {
				hi = len(lines)
			}
			context := strings.Join(lines[lo:hi], " ")
			if len(context) > experienceContextLimit {
				context = context[:experienceContextLimit]
			}
			entries = append(entries, types.ExperienceEntry{
				Start:   m[1],
				End:     m[2],
				Context: context,
			})
		}
	}
	return entries
}

// totalExperienceYears 计算总工作年限。优先使用显式的"N+ years experience"
// 声明（取最大值）；否则对全文里所有YYYY区间求和，present/current按
// referenceYear折算。两者都没有就是0，结果不会为负。
func totalExperienceYears(text string, referenceYear int) int {
	if matches := explicitYearsRe.FindAllStringSubmatch(text, -1); len(matches) > 0 {
		best := 0
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
		return best
	}

	ranges := yearRangeRe.FindAllStringSubmatch(text, -1)
	if len(ranges) == 0 {
		return 0
	}
	total := 0
	for _, m := range ranges {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := referenceYear
		if low := strings.ToLower(m[2]); low != "present" && low != "current" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if end > start {
			total += end - start
		}
	}
	return total
}
