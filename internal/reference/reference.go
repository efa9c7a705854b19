// Package reference finds url template tags in a line of template source.
package reference

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/morozRed/routejump/internal/route"
)

// urlTagPattern matches {% url 'name' args %}; only the quoted name is kept.
var urlTagPattern = regexp.MustCompile(`\{% url '([^']*)'(?:\s+([^%]+))? %\}`)

// Extract returns the qualified route name referenced by the url tag on
// lineText. The second result is false when the line carries no url tag.
func Extract(lineText string) (route.QualifiedName, bool) {
	match := urlTagPattern.FindStringSubmatch(strings.TrimSpace(lineText))
	if match == nil {
		return nil, false
	}
	return route.ParseName(match[1]), true
}

// LineAt returns the text of the 1-based line in content.
func LineAt(content []byte, line int) (string, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	if line <= 0 || line > len(lines) {
		return "", fmt.Errorf("line %d out of range (file has %d lines)", line, len(lines))
	}
	return lines[line-1], nil
}

// ExtractAt runs Extract on the 1-based line of a template file's content.
func ExtractAt(content []byte, line int) (route.QualifiedName, bool, error) {
	text, err := LineAt(content, line)
	if err != nil {
		return nil, false, err
	}
	name, ok := Extract(text)
	return name, ok, nil
}
