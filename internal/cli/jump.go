package cli

import (
	"fmt"
	"path/filepath"

	"github.com/morozRed/routejump/internal/config"
	"github.com/morozRed/routejump/internal/fileutil"
	"github.com/morozRed/routejump/internal/jump"
	"github.com/spf13/cobra"
)

func RunJump(cmd *cobra.Command, args []string) error {
	rootPath, err := resolveProjectRoot(cmd)
	if err != nil {
		return err
	}
	text, err := OptionalStringFlag(cmd, "text")
	if err != nil {
		return err
	}
	if text == "" && len(args) == 1 {
		text = args[0]
	}
	file, err := OptionalStringFlag(cmd, "file")
	if err != nil {
		return err
	}
	line, err := OptionalIntFlag(cmd, "line", 0)
	if err != nil {
		return err
	}
	if text == "" {
		if file == "" {
			return fmt.Errorf("pass the line text, or --file and --line")
		}
		if line <= 0 {
			return fmt.Errorf("--line must be >= 1 when --file is set")
		}
		// --file is relative to the working directory, not the project root.
		if file, err = filepath.Abs(file); err != nil {
			return fmt.Errorf("failed to resolve --file: %w", err)
		}
	}

	cfg, err := config.Load(rootPath)
	if err != nil {
		return err
	}
	format, err := ParseOutputFormat(cmd, cfg)
	if err != nil {
		return err
	}

	navigator := jump.NewNavigator(newLogger(cmd))
	loc, err := navigator.Jump(commandContext(cmd), jump.Request{
		Root:   rootPath,
		Text:   text,
		File:   file,
		Line:   line,
		Config: &cfg,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return fileutil.PrintJSON(out, loc)
	case "yaml":
		return fileutil.PrintYAML(out, loc)
	}

	fmt.Fprintf(out, "route for %q\n", loc.Name)
	fmt.Fprintf(out, "- %s\n", loc.String())
	fmt.Fprintf(out, "  %s\n", loc.Text)
	if len(loc.Issues) > 0 {
		fmt.Fprintf(out, "note: %d file(s) skipped\n", len(loc.Issues))
	}
	return nil
}
