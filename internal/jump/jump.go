// Package jump resolves the url tag on a template line to the urls.py line
// that declares the route.
package jump

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/morozRed/routejump/internal/config"
	"github.com/morozRed/routejump/internal/reference"
	"github.com/morozRed/routejump/internal/route"
	"github.com/morozRed/routejump/internal/scan"
)

// Request identifies the line to jump from. Text wins over File/Line.
// A nil Config is loaded from Root.
type Request struct {
	Root   string
	Text   string
	File   string
	Line   int
	Config *config.Config
}

// Issue is a non-fatal problem met while resolving.
type Issue struct {
	File    string `json:"file" yaml:"file"`
	Message string `json:"message" yaml:"message"`
}

// Location is the declaration line to select. The selection spans the whole
// line, from StartColumn to EndColumn.
type Location struct {
	Name        string  `json:"name" yaml:"name"`
	File        string  `json:"file" yaml:"file"`
	AbsPath     string  `json:"abs_path" yaml:"abs_path"`
	Line        int     `json:"line" yaml:"line"`
	LineIndex   int     `json:"line_index" yaml:"line_index"`
	Text        string  `json:"text" yaml:"text"`
	StartColumn int     `json:"start_column" yaml:"start_column"`
	EndColumn   int     `json:"end_column" yaml:"end_column"`
	Searched    int     `json:"searched" yaml:"searched"`
	Issues      []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// String formats the location as file:line:column for quickfix lists.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.StartColumn+1)
}

// Navigator runs lookups. It holds no state between calls; each Jump
// re-enumerates and re-reads the project.
type Navigator struct {
	logger *log.Logger
}

func NewNavigator(logger *log.Logger) *Navigator {
	return &Navigator{logger: logger}
}

// Jump extracts the route name from the request's line and resolves it
// against the project's routing-configuration files.
func (n *Navigator) Jump(ctx context.Context, req Request) (*Location, error) {
	rootPath, err := filepath.Abs(req.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	text, err := requestLine(rootPath, req)
	if err != nil {
		return nil, err
	}
	name, ok := reference.Extract(text)
	if !ok {
		return nil, ErrNoReference
	}
	n.logger.Debug("extracted route name", "name", name.String(), "segments", len(name))

	if req.Config != nil {
		return n.Resolve(ctx, rootPath, name, *req.Config)
	}
	cfg, err := config.Load(rootPath)
	if err != nil {
		return nil, err
	}
	return n.Resolve(ctx, rootPath, name, cfg)
}

// Resolve finds name under rootPath using cfg's pattern, ignore rules and
// read concurrency.
func (n *Navigator) Resolve(ctx context.Context, rootPath string, name route.QualifiedName, cfg config.Config) (*Location, error) {
	fileRules, err := scan.LoadIgnoreRules(rootPath)
	if err != nil {
		return nil, err
	}
	rules := append(fileRules, cfg.Ignore...)

	paths, walkIssues, err := scan.Enumerate(rootPath, cfg.Pattern, rules)
	if err != nil {
		return nil, err
	}
	issues := make([]Issue, 0, len(walkIssues))
	for _, issue := range walkIssues {
		n.logger.Warn(issue.Message, "file", issue.File)
		issues = append(issues, Issue{File: issue.File, Message: issue.Message})
	}
	if len(paths) == 0 {
		return nil, ErrNoConfigFiles
	}
	n.logger.Debug("searching routing files", "count", len(paths), "pattern", cfg.Pattern)

	results := scan.ReadAll(ctx, rootPath, paths, cfg.Concurrency)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates := make([]route.CandidateFile, 0, len(results))
	for _, result := range results {
		if result.Err != nil {
			readErr := &ReadError{Path: result.Path, Err: result.Err}
			n.logger.Warn("failed to read routing file", "file", result.Path, "err", result.Err)
			issues = append(issues, Issue{File: result.Path, Message: readErr.Error()})
			continue
		}
		candidates = append(candidates, route.CandidateFile{Path: result.Path, Content: result.Content})
	}

	match := route.Resolve(name, candidates)
	if !match.Found {
		return nil, &NotFoundError{Name: name.String(), Issues: issues}
	}

	loc := &Location{
		Name:        name.String(),
		File:        match.File.Path,
		AbsPath:     filepath.Join(rootPath, match.File.Path),
		Line:        match.LineIndex + 1,
		LineIndex:   match.LineIndex,
		Text:        match.LineText,
		StartColumn: 0,
		EndColumn:   len([]rune(match.LineText)),
		Searched:    len(paths),
		Issues:      issues,
	}
	n.logger.Debug("resolved route", "name", loc.Name, "location", loc.String())
	return loc, nil
}

func requestLine(rootPath string, req Request) (string, error) {
	if req.Text != "" {
		return req.Text, nil
	}
	if req.File == "" {
		return "", errors.New("either line text or a template file and line is required")
	}
	path := req.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootPath, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return reference.LineAt(content, req.Line)
}
