package ignore

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FileName is the per-project ignore file, read from the project root.
const FileName = ".routejumpignore"

// DefaultRules keep virtualenvs and installed packages out of the search;
// their urls.py files belong to third-party apps, not the project.
var DefaultRules = []string{
	".git/",
	".hg/",
	"node_modules/",
	"__pycache__/",
	".venv/",
	"venv/",
	"env/",
	".tox/",
	"site-packages/",
	"dist-packages/",
	"build/",
	"dist/",
}

type rule struct {
	expr     *regexp.Regexp
	negated  bool
	dirOnly  bool
	anchored bool
	nested   bool
}

// Matcher applies gitignore-like rules; the last matching rule decides.
type Matcher struct {
	rules []rule
}

// NewMatcher compiles DefaultRules followed by userRules, so a user "!" rule
// can re-include a default exclusion.
func NewMatcher(userRules []string) *Matcher {
	all := make([]string, 0, len(DefaultRules)+len(userRules))
	all = append(all, DefaultRules...)
	all = append(all, userRules...)

	m := &Matcher{rules: make([]rule, 0, len(all))}
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			m.rules = append(m.rules, parsed)
		}
	}
	return m
}

// ShouldIgnore reports whether relPath (relative to the project root) is excluded.
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = normalizePath(relPath)
	if relPath == "" || relPath == "." {
		return false
	}
	ignored := false
	for _, r := range m.rules {
		if r.matches(relPath, isDir) {
			ignored = !r.negated
		}
	}
	return ignored
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	var r rule
	if strings.HasPrefix(line, "!") {
		r.negated = true
		line = line[1:]
	}
	if strings.HasPrefix(line, "/") {
		r.anchored = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalizePath(line)
	if line == "" {
		return rule{}, false
	}
	expr, err := regexp.Compile("^" + globToRegex(line) + "$")
	if err != nil {
		return rule{}, false
	}
	r.expr = expr
	r.nested = strings.Contains(line, "/")
	return r, true
}

func (r rule) matches(relPath string, isDir bool) bool {
	parts := strings.Split(relPath, "/")

	if r.dirOnly {
		// Any directory prefix of relPath (or relPath itself when it is a
		// directory) may match.
		limit := len(parts) - 1
		if isDir {
			limit = len(parts)
		}
		for i := 1; i <= limit; i++ {
			prefix := strings.Join(parts[:i], "/")
			if r.anchored || r.nested {
				if r.expr.MatchString(prefix) {
					return true
				}
				continue
			}
			if r.expr.MatchString(parts[i-1]) {
				return true
			}
		}
		return false
	}

	if r.anchored {
		return r.expr.MatchString(relPath)
	}
	if r.nested {
		for i := range parts {
			if r.expr.MatchString(strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}
	for _, segment := range parts {
		if r.expr.MatchString(segment) {
			return true
		}
	}
	return false
}

func globToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == '*' && i+1 < len(pattern) && pattern[i+1] == '*':
			b.WriteString(".*")
			i++
		case ch == '*':
			b.WriteString("[^/]*")
		case ch == '?':
			b.WriteString("[^/]")
		case strings.IndexByte(`.+()|[]{}^$\`, ch) >= 0:
			b.WriteByte('\\')
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return strings.TrimPrefix(path, "/")
}
