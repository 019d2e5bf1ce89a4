package usegrantmcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Defaults used when no option overrides them.
const (
	DefaultName         = "usegrant"
	DefaultVersion      = "1.0.0"
	DefaultInstructions = "UseGrant API integration for Model Context Protocol"
)

// New creates a new MCP handler with the given options
func New(opts ...Option) (*Handler, error) {
	cfg := &handlerConfig{
		name:         DefaultName,
		version:      DefaultVersion,
		instructions: DefaultInstructions,
		logger:       slog.Default(),
	}

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	// Create a new MCP server if not provided
	if cfg.server == nil {
		impl := &mcp.Implementation{
			Name:    cfg.name,
			Version: cfg.version,
		}
		cfg.server = mcp.NewServer(impl, &mcp.ServerOptions{Instructions: cfg.instructions})
	}

	handler := &Handler{server: cfg.server}
	for _, reg := range cfg.tools {
		reg.register(cfg.server, cfg.logger, cfg.metrics)
		handler.tools = append(handler.tools, reg.name)
	}
	for _, reg := range cfg.prompts {
		reg.register(cfg.server, cfg.logger, cfg.metrics)
		handler.prompts = append(handler.prompts, reg.name)
	}

	return handler, nil
}

// jsonText renders v the way every read and create tool reports its result:
// two-space indented JSON with no HTML escaping.
func jsonText(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// deletedText is the confirmation returned by delete tools.
func deletedText(entity, id string) string {
	return fmt.Sprintf("%s %s deleted", entity, id)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
