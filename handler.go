package usegrantmcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/usegrant/usegrant-mcp/internal/telemetry"
)

// Handler is the main MCP handler struct
type Handler struct {
	server  *mcp.Server
	tools   []string
	prompts []string
}

// GetServer returns the underlying MCP server for advanced usage
func (h *Handler) GetServer() *mcp.Server {
	return h.server
}

// Tools returns the registered tool names in registration order.
func (h *Handler) Tools() []string {
	return append([]string(nil), h.tools...)
}

// Prompts returns the registered prompt names in registration order.
func (h *Handler) Prompts() []string {
	return append([]string(nil), h.prompts...)
}

// ServeStdio serves the protocol on stdin/stdout until ctx is cancelled or
// the client disconnects.
func (h *Handler) ServeStdio(ctx context.Context) error {
	return h.Serve(ctx, &mcp.StdioTransport{})
}

// Serve runs the server on an arbitrary transport.
func (h *Handler) Serve(ctx context.Context, transport mcp.Transport) error {
	return h.server.Run(ctx, transport)
}

// createTypedHandler converts a typed tool function into an MCP
// ToolHandlerFor. The SDK has already decoded and validated the input by
// the time it runs. Errors from fn are returned as-is.
func createTypedHandler[TIn any](name string, fn ToolFunc[TIn], logger *slog.Logger, metrics *telemetry.Metrics) mcp.ToolHandlerFor[TIn, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TIn) (*mcp.CallToolResult, any, error) {
		ctx, span := telemetry.StartSpan(ctx, "mcp.tool/"+name, attribute.String("mcp.tool", name))
		start := time.Now()

		text, err := fn(ctx, input)

		elapsed := time.Since(start)
		metrics.ObserveTool(name, elapsed, err)
		telemetry.EndSpan(span, err)

		if err != nil {
			logger.WarnContext(ctx, "tool call failed", "tool", name, "duration", elapsed, "error", err)
			return nil, nil, err
		}
		logger.DebugContext(ctx, "tool call", "tool", name, "duration", elapsed)
		return textResult(text), nil, nil
	}
}
