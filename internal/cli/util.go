package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/morozRed/routejump/internal/logging"
	"github.com/spf13/cobra"
)

func resolveProjectRoot(cmd *cobra.Command) (string, error) {
	root, err := persistentString(cmd, "root")
	if err != nil {
		return "", err
	}
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return "", fmt.Errorf("project root %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", absRoot)
	}
	return absRoot, nil
}

func persistentString(cmd *cobra.Command, name string) (string, error) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return "", nil
	}
	return strings.TrimSpace(flag.Value.String()), nil
}

func newLogger(cmd *cobra.Command) *log.Logger {
	verbose := false
	if flag := cmd.Flags().Lookup("verbose"); flag != nil {
		verbose = flag.Value.String() == "true"
	}
	return logging.New(cmd.ErrOrStderr(), verbose)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func SummarizePaths(paths []string, max int) string {
	if len(paths) <= max {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(paths[:max], ", "), len(paths)-max)
}
