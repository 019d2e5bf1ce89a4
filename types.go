// Package usegrantmcp exposes the UseGrant API as Model Context Protocol
// tools and prompts served over stdio.
package usegrantmcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usegrant/usegrant-mcp/internal/telemetry"
)

// Option is a functional option for configuring handlers
type Option func(*handlerConfig) error

// ToolFunc is the function signature for typed tools. The input is decoded
// and validated against the schema generated from TIn; the returned string
// becomes the single text content item of the result.
type ToolFunc[TIn any] func(context.Context, TIn) (string, error)

// PromptFunc is the function signature for typed prompts. Prompt arguments
// arrive as strings and are decoded into TIn; the returned string becomes
// the text of a single assistant message.
type PromptFunc[TIn any] func(context.Context, TIn) (string, error)

// handlerConfig holds the configuration built by options
type handlerConfig struct {
	name         string
	version      string
	instructions string
	server       *mcp.Server // The MCP-SDK server instance
	logger       *slog.Logger
	metrics      *telemetry.Metrics

	tools   []registration
	prompts []registration
}

// registration defers adding a tool or prompt until the server exists.
// The logger and metrics are resolved at registration time so option order
// does not matter.
type registration struct {
	name     string
	register func(server *mcp.Server, logger *slog.Logger, metrics *telemetry.Metrics)
}
