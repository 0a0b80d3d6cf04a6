package parser

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"resume-match-go/internal/types"
)

var roleKeywords = []string{"developer", "engineer", "manager", "analyst", "scientist", "designer"}

var nonLetterRe = regexp.MustCompile(`[^a-zA-Z\s]`)

const (
	defaultRoleTitle  = "Software Engineer"
	searchURLTemplate = "https://www.google.com/search?q=%s"
	roleLineScanLimit = 20
	maxDetectedRoles  = 3
)

// generateSearchLinks 根据简历内容生成恰好3个求职搜索链接：
// 职位+核心技能、远程职位、职位的趋势技能（指向下一个年份）。
// 职位从前20行里含角色关键词的行推断，识别不到就用默认头衔。
func generateSearchLinks(text string, skills []string, trendYear int) []types.SearchLink {
	lines := strings.Split(text, "\n")
	if len(lines) > roleLineScanLimit {
		lines = lines[:roleLineScanLimit]
	}

	var roles []string
	for _, line := range lines {
		low := strings.ToLower(line)
		for _, role := range roleKeywords {
			if strings.Contains(low, role) {
				roles = append(roles, strings.TrimSpace(line))
				break
			}
		}
		if len(roles) >= maxDetectedRoles {
			break
		}
	}

	baseTitle := defaultRoleTitle
	if len(roles) > 0 {
		if cleaned := strings.TrimSpace(nonLetterRe.ReplaceAllString(roles[0], "")); cleaned != "" {
			baseTitle = cleaned
		}
	}

	topSkills := skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}

	links := make([]types.SearchLink, 0, 3)

	query := fmt.Sprintf("%s jobs %s", baseTitle, strings.Join(topSkills, " "))
	links = append(links, types.SearchLink{
		Label: fmt.Sprintf("Jobs for %s with %s", baseTitle, strings.Join(topSkills, ", ")),
		URL:   fmt.Sprintf(searchURLTemplate, url.QueryEscape(query)),
	})

	query = fmt.Sprintf("Remote %s jobs", baseTitle)
	links = append(links, types.SearchLink{
		Label: fmt.Sprintf("Remote %s Jobs", baseTitle),
		URL:   fmt.Sprintf(searchURLTemplate, url.QueryEscape(query)),
	})

	query = fmt.Sprintf("Trending skills for %s %d", baseTitle, trendYear)
	links = append(links, types.SearchLink{
		Label: fmt.Sprintf("Trending Skills for %s", baseTitle),
		URL:   fmt.Sprintf(searchURLTemplate, url.QueryEscape(query)),
	})

	return links
}
