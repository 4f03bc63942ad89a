package generation

import (
	"regexp"
	"strings"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

const (
	maxTitles = 10
	maxTags   = 15
)

var (
	titleNumbering = regexp.MustCompile(`^\d+[.)]\s*`)
	timestampLine  = regexp.MustCompile(`^(\d{1,2}:\d{2})\s*-\s*(.+)$`)
)

// nonEmptyLines splits s into trimmed, non-blank lines.
func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseTitles strips "1." / "1)" numbering and keeps at most ten titles.
func parseTitles(text string) []string {
	titles := make([]string, 0, maxTitles)
	for _, line := range nonEmptyLines(text) {
		t := strings.TrimSpace(titleNumbering.ReplaceAllString(line, ""))
		if t == "" {
			continue
		}
		titles = append(titles, t)
		if len(titles) == maxTitles {
			break
		}
	}
	return titles
}

// parseTags strips leading '#' characters and keeps at most fifteen tags.
func parseTags(text string) []string {
	tags := make([]string, 0, maxTags)
	for _, line := range nonEmptyLines(text) {
		t := strings.TrimSpace(strings.TrimLeft(line, "#"))
		if t == "" {
			continue
		}
		tags = append(tags, t)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// parseTimestamps keeps lines of the form "MM:SS - Description".
func parseTimestamps(text string) []domain.Timestamp {
	out := []domain.Timestamp{}
	for _, line := range nonEmptyLines(text) {
		m := timestampLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out = append(out, domain.Timestamp{Time: m[1], Description: strings.TrimSpace(m[2])})
	}
	return out
}
