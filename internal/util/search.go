package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a search string.
type SearchQuery struct {
	Users      []string
	Categories []string
	Tasks      []string
	Text       []string
}

var (
	userRegex     = regexp.MustCompile(`user:(\S+)`)
	categoryRegex = regexp.MustCompile(`category:(\S+)`)
	taskRegex     = regexp.MustCompile(`task:(\S+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured
// components. Remaining words become free-text terms.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, match[1])
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Users = extract(userRegex)
	sq.Categories = extract(categoryRegex)
	sq.Tasks = extract(taskRegex)
	sq.Text = strings.Fields(query)

	return sq
}

// IsEmpty reports whether the query has no filters at all.
func (sq SearchQuery) IsEmpty() bool {
	return len(sq.Users) == 0 && len(sq.Categories) == 0 && len(sq.Tasks) == 0 && len(sq.Text) == 0
}
