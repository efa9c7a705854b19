package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/morozRed/routejump/internal/jump"
)

// Handler turns goto_url calls into navigator lookups.
type Handler struct {
	nav *jump.Navigator
}

func NewHandler(nav *jump.Navigator) *Handler {
	return &Handler{nav: nav}
}

// Handle runs one lookup. Lookup failures are returned as tool errors so the
// client can show them; only protocol problems return a Go error.
func (h *Handler) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawPath, err := req.RequireString("project_path")
	if err != nil {
		return mcp.NewToolResultError("project_path is required"), nil
	}
	projectPath, err := filepath.Abs(rawPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid project_path: %v", err)), nil
	}

	request := jump.Request{
		Root: projectPath,
		Text: req.GetString("line_text", ""),
		File: req.GetString("file", ""),
		Line: req.GetInt("line", 0),
	}
	if request.Text == "" && (request.File == "" || request.Line <= 0) {
		return mcp.NewToolResultError("either line_text, or file and line, is required"), nil
	}

	loc, err := h.nav.Jump(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(describe(err)), nil
	}

	payload, err := json.Marshal(loc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode location: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func describe(err error) string {
	var notFound *jump.NotFoundError
	switch {
	case errors.Is(err, jump.ErrNoReference):
		return "the line has no {% url '...' %} tag"
	case errors.As(err, &notFound) && len(notFound.Issues) > 0:
		return fmt.Sprintf("%s (%d file(s) could not be read)", err.Error(), len(notFound.Issues))
	default:
		return err.Error()
	}
}
