package journal

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterMarker = "---"

// frontmatterBounds returns the closing marker index when lines open with a
// closed frontmatter block.
func frontmatterBounds(lines []string) (int, bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterMarker {
		return -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterMarker {
			return i, true
		}
	}
	return -1, false
}

// frontmatterDate extracts the date field from raw frontmatter lines
// (markers included). Invalid YAML yields ok == false.
func frontmatterDate(lines []string) (string, bool) {
	if len(lines) < 2 {
		return "", false
	}
	var fm struct {
		Date yaml.Node `yaml:"date"`
	}
	body := strings.Join(lines[1:len(lines)-1], "\n")
	if err := yaml.Unmarshal([]byte(body), &fm); err != nil {
		return "", false
	}
	if fm.Date.Kind != yaml.ScalarNode {
		return "", false
	}
	return fm.Date.Value, true
}

// withFrontmatterDate returns content whose frontmatter carries date.
// Content without frontmatter gets a fresh block; a block missing the
// field gets it inserted after the opening marker.
func withFrontmatterDate(content, date string) string {
	lines := strings.Split(content, "\n")
	end, ok := frontmatterBounds(lines)
	if !ok {
		return frontmatterMarker + "\ndate: " + date + "\n" + frontmatterMarker + "\n\n" + content
	}
	if _, has := frontmatterDate(lines[:end+1]); has {
		return content
	}
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[0], "date: "+date)
	out = append(out, lines[1:]...)
	return strings.Join(out, "\n")
}
