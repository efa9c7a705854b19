package cli

import (
	"fmt"
	"strings"

	"github.com/morozRed/routejump/internal/config"
	"github.com/spf13/cobra"
)

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func OptionalBoolFlag(cmd *cobra.Command, name string, defaultValue bool) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return defaultValue, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func OptionalIntFlag(cmd *cobra.Command, name string, defaultValue int) (int, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return defaultValue, nil
	}
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// ParseOutputFormat picks the output format: --json, then --format, then the
// project config.
func ParseOutputFormat(cmd *cobra.Command, cfg config.Config) (string, error) {
	asJSON, err := OptionalBoolFlag(cmd, "json", false)
	if err != nil {
		return "", err
	}
	if asJSON {
		return "json", nil
	}
	format, err := OptionalStringFlag(cmd, "format")
	if err != nil {
		return "", err
	}
	if format == "" {
		format = cfg.Format
	}
	format = strings.ToLower(format)
	switch format {
	case "text", "json", "yaml":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (supported: text, json, yaml)", format)
	}
}
