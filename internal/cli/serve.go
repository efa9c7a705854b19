package cli

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/server"
	"github.com/morozRed/routejump/internal/jump"
	"github.com/morozRed/routejump/internal/mcpserver"
	"github.com/spf13/cobra"
)

func RunServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	s := mcpserver.New(cmd.Root().Version)
	dispose := mcpserver.Register(s, mcpserver.NewHandler(jump.NewNavigator(logger)))
	defer dispose()

	logger.Info("serving MCP on stdio", "tool", mcpserver.ToolName)
	stdio := server.NewStdioServer(s)
	err := stdio.Listen(commandContext(cmd), cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
