package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/morozRed/routejump/internal/config"
	"github.com/morozRed/routejump/internal/fileutil"
	"github.com/morozRed/routejump/internal/ignore"
	"github.com/morozRed/routejump/internal/pysyntax"
	"github.com/morozRed/routejump/internal/route"
	"github.com/morozRed/routejump/internal/scan"
	"github.com/spf13/cobra"
)

type DoctorFile struct {
	Path      string            `json:"path"`
	AppName   string            `json:"app_name,omitempty"`
	Routes    int               `json:"routes"`
	Syntax    *pysyntax.Problem `json:"syntax,omitempty"`
	ReadError string            `json:"read_error,omitempty"`
}

type DoctorSummary struct {
	Mode        string       `json:"mode"`
	RootPath    string       `json:"root_path"`
	ConfigPath  string       `json:"config_path,omitempty"`
	Pattern     string       `json:"pattern"`
	IgnoreRules []string     `json:"ignore_rules,omitempty"`
	Files       []DoctorFile `json:"files"`
	Duplicates  []string     `json:"duplicates,omitempty"`
	WalkIssues  []scan.Issue `json:"walk_issues,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	Healthy     bool         `json:"healthy"`
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

func RunDoctor(cmd *cobra.Command, args []string) error {
	rootPath, err := resolveProjectRoot(cmd)
	if err != nil {
		return err
	}
	asJSON, err := OptionalBoolFlag(cmd, "json", false)
	if err != nil {
		return err
	}

	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	summary, err := BuildDoctorSummary(cmd, rootPath, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return fileutil.PrintJSON(out, summary)
	}

	status := warnStyle.Render("issues")
	if summary.Healthy {
		status = okStyle.Render("ok")
	}
	fmt.Fprintf(out, "doctor: %s\n", status)
	fmt.Fprintf(out, "root: %s\n", summary.RootPath)
	configPath := summary.ConfigPath
	if configPath == "" {
		configPath = "(defaults)"
	}
	fmt.Fprintf(out, "config: %s pattern=%s\n", configPath, summary.Pattern)
	fmt.Fprintf(out, "files (%d):\n", len(summary.Files))
	for _, file := range summary.Files {
		fmt.Fprintf(out, "- %s routes=%d", file.Path, file.Routes)
		if file.AppName != "" {
			fmt.Fprintf(out, " app_name=%s", file.AppName)
		}
		if file.Syntax != nil {
			fmt.Fprintf(out, " syntax=%d:%d %s", file.Syntax.Line, file.Syntax.Column, file.Syntax.Message)
		}
		if file.ReadError != "" {
			fmt.Fprintf(out, " read_error=%q", file.ReadError)
		}
		fmt.Fprintln(out)
	}
	if len(summary.Duplicates) > 0 {
		fmt.Fprintf(out, "ambiguous (%d): %s\n", len(summary.Duplicates), SummarizePaths(summary.Duplicates, 5))
	}
	for _, suggestion := range summary.Suggestions {
		fmt.Fprintf(out, "next: %s\n", suggestion)
	}
	return nil
}

// BuildDoctorSummary scans rootPath the way a lookup would and reports what
// it found, including syntax problems and route names declared by more than
// one file under the same namespace.
func BuildDoctorSummary(cmd *cobra.Command, rootPath string, cfg config.Config) (DoctorSummary, error) {
	summary := DoctorSummary{
		Mode:       "doctor",
		RootPath:   rootPath,
		ConfigPath: cfg.Path,
		Pattern:    cfg.Pattern,
		Files:      make([]DoctorFile, 0),
	}

	fileRules, err := scan.LoadIgnoreRules(rootPath)
	if err != nil {
		return summary, err
	}
	summary.IgnoreRules = append(fileRules, cfg.Ignore...)

	paths, walkIssues, err := scan.Enumerate(rootPath, cfg.Pattern, summary.IgnoreRules)
	if err != nil {
		return summary, fmt.Errorf("failed to scan files: %w", err)
	}
	summary.WalkIssues = walkIssues

	checker := pysyntax.NewChecker()
	declaredBy := make(map[string][]string)
	results := scan.ReadAll(commandContext(cmd), rootPath, paths, cfg.Concurrency)
	for _, result := range results {
		file := DoctorFile{Path: result.Path}
		if result.Err != nil {
			file.ReadError = result.Err.Error()
			summary.Files = append(summary.Files, file)
			continue
		}

		file.AppName, _ = route.AppNamespace(result.Content)
		routes := route.NamedRoutes(result.Content)
		file.Routes = len(routes)
		for _, name := range fileutil.DedupeStrings(routes) {
			qualified := name
			if file.AppName != "" {
				qualified = file.AppName + route.Separator + name
			}
			declaredBy[qualified] = append(declaredBy[qualified], result.Path)
		}

		problem, err := checker.Check(commandContext(cmd), result.Path, []byte(result.Content))
		if err != nil {
			return summary, err
		}
		file.Syntax = problem
		summary.Files = append(summary.Files, file)
	}

	for name, files := range declaredBy {
		if len(files) > 1 {
			summary.Duplicates = append(summary.Duplicates, fmt.Sprintf("%s (%s)", name, strings.Join(files, ", ")))
		}
	}
	sort.Strings(summary.Duplicates)

	summary.Suggestions = doctorSuggestions(summary)
	summary.Healthy = len(summary.Files) > 0 && len(summary.Suggestions) == 0
	return summary, nil
}

func doctorSuggestions(summary DoctorSummary) []string {
	suggestions := make([]string, 0)
	if len(summary.Files) == 0 {
		suggestions = append(suggestions, fmt.Sprintf("no %s found; check the pattern in %s.yaml", summary.Pattern, config.FileName))
	}
	for _, file := range summary.Files {
		if file.ReadError != "" {
			suggestions = append(suggestions, fmt.Sprintf("make %s readable", file.Path))
		}
		if file.Syntax != nil {
			suggestions = append(suggestions, fmt.Sprintf("fix syntax in %s:%d", file.Path, file.Syntax.Line))
		}
	}
	if len(summary.Duplicates) > 0 {
		suggestions = append(suggestions, "the shallowest file wins for ambiguous names; exclude copies in "+ignoreFileHint(summary.RootPath))
	}
	return fileutil.SortedUnique(suggestions)
}

func ignoreFileHint(rootPath string) string {
	path := filepath.Join(rootPath, ignore.FileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ignore.FileName
}
