package route

import (
	"path/filepath"
	"strings"
)

// Separator splits a qualified route name into namespace segments and a leaf.
const Separator = ":"

// QualifiedName is a route identifier split on Separator, outer namespace first.
type QualifiedName []string

// ParseName splits raw on Separator. It always yields at least one segment.
func ParseName(raw string) QualifiedName {
	return QualifiedName(strings.Split(raw, Separator))
}

// Leaf returns the route name itself (the last segment).
func (n QualifiedName) Leaf() string {
	if len(n) == 0 {
		return ""
	}
	return n[len(n)-1]
}

// Namespaces returns every segment except the leaf.
func (n QualifiedName) Namespaces() []string {
	if len(n) <= 1 {
		return nil
	}
	return n[:len(n)-1]
}

func (n QualifiedName) String() string {
	return strings.Join(n, Separator)
}

// Valid reports whether the name can be resolved: at least one segment and
// no empty segment.
func (n QualifiedName) Valid() bool {
	if len(n) == 0 {
		return false
	}
	for _, segment := range n {
		if segment == "" {
			return false
		}
	}
	return true
}

// CandidateFile is a routing-configuration file read during one lookup.
type CandidateFile struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"-" yaml:"-"`
}

func (f CandidateFile) Dir() string {
	return filepath.Dir(f.Path)
}

// Lines splits the content the way an editor numbers lines.
func (f CandidateFile) Lines() []string {
	content := strings.ReplaceAll(f.Content, "\r\n", "\n")
	return strings.Split(content, "\n")
}

// MatchResult is the outcome of Resolve. The zero value means not found.
type MatchResult struct {
	Found     bool
	File      CandidateFile
	LineIndex int
	LineText  string
}

// NotFound is the empty MatchResult.
var NotFound = MatchResult{}
