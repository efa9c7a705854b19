// Package scan enumerates routing-configuration files under a project root
// and reads them concurrently.
package scan

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/morozRed/routejump/internal/ignore"
	"golang.org/x/sync/errgroup"
)

// DefaultPattern is the base name of Django routing-configuration files.
const DefaultPattern = "urls.py"

// DefaultConcurrency bounds in-flight reads when the caller passes no limit.
const DefaultConcurrency = 16

// Issue records a path that was skipped while walking the project.
type Issue struct {
	File    string `json:"file" yaml:"file"`
	Message string `json:"message" yaml:"message"`
}

// Result is the outcome of reading one candidate path.
type Result struct {
	Path    string
	Content string
	Err     error
}

// LoadIgnoreRules reads ignore.FileName from rootPath. A missing file yields no rules.
func LoadIgnoreRules(rootPath string) ([]string, error) {
	f, err := os.Open(filepath.Join(rootPath, ignore.FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ignore.FileName, err)
	}
	defer f.Close()

	rules := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rules = append(rules, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ignore.FileName, err)
	}
	return rules, nil
}

// Enumerate walks rootPath and returns the relative paths of files whose base
// name matches pattern. Paths closer to the root come first, then paths sort
// lexicographically, so the same tree always yields the same order.
func Enumerate(rootPath, pattern string, ignoreRules []string) ([]string, []Issue, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, DefaultPattern); err != nil {
		return nil, nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}

	matcher := ignore.NewMatcher(ignoreRules)
	paths := make([]string, 0)
	issues := make([]Issue, 0)

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, walkErr error) error {
		relPath, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			return relErr
		}
		if walkErr != nil {
			if path == rootPath {
				return walkErr
			}
			issues = append(issues, Issue{File: relPath, Message: fmt.Sprintf("walk error: %v", walkErr)})
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher.ShouldIgnore(relPath, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		// Symlinked modules are kept; a dangling link surfaces as a read error.
		if info.IsDir() || !(info.Mode().IsRegular() || info.Mode()&os.ModeSymlink != 0) {
			return nil
		}

		if ok, _ := filepath.Match(pattern, info.Name()); ok {
			paths = append(paths, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, issues, fmt.Errorf("failed to scan %s: %w", rootPath, err)
	}

	SortByDepth(paths)
	return paths, issues, nil
}

// SortByDepth orders paths by number of path segments, then lexicographically.
func SortByDepth(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		di := strings.Count(filepath.ToSlash(paths[i]), "/")
		dj := strings.Count(filepath.ToSlash(paths[j]), "/")
		if di != dj {
			return di < dj
		}
		return paths[i] < paths[j]
	})
}

// ReadAll reads every path relative to rootPath concurrently, at most limit
// at a time, and waits for all of them. Results keep the order of paths; a
// failed read is reported in its Result and does not stop the others.
func ReadAll(ctx context.Context, rootPath string, paths []string, limit int) []Result {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = readOne(gctx, rootPath, path)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func readOne(ctx context.Context, rootPath, path string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Path: path, Err: err}
	}
	absPath := path
	if !filepath.IsAbs(path) {
		absPath = filepath.Join(rootPath, path)
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	return Result{Path: path, Content: string(content)}
}
