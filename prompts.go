package usegrantmcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/usegrant/usegrant-mcp/internal/telemetry"
)

// createPromptHandler adapts a typed prompt function to an MCP
// PromptHandler. Prompt arguments are untyped strings on the wire and the
// SDK does not validate them, so schema is enforced here before decoding
// into TIn: required arguments must be present and arguments with a
// minLength must not be blank.
func createPromptHandler[TIn any](name, description string, schema *jsonschema.Schema, fn PromptFunc[TIn], logger *slog.Logger, metrics *telemetry.Metrics) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		ctx, span := telemetry.StartSpan(ctx, "mcp.prompt/"+name, attribute.String("mcp.prompt", name))

		text, err := runPrompt(ctx, req, schema, fn)

		metrics.ObservePrompt(name, err)
		telemetry.EndSpan(span, err)

		if err != nil {
			logger.WarnContext(ctx, "prompt failed", "prompt", name, "error", err)
			return nil, err
		}
		return &mcp.GetPromptResult{
			Description: description,
			Messages: []*mcp.PromptMessage{
				{
					Role:    "assistant",
					Content: &mcp.TextContent{Text: text},
				},
			},
		}, nil
	}
}

func runPrompt[TIn any](ctx context.Context, req *mcp.GetPromptRequest, schema *jsonschema.Schema, fn PromptFunc[TIn]) (string, error) {
	var args map[string]string
	if req != nil && req.Params != nil {
		args = req.Params.Arguments
	}

	if err := checkPromptArguments(schema, args); err != nil {
		return "", err
	}

	input, err := decodePromptArguments[TIn](args)
	if err != nil {
		return "", err
	}
	return fn(ctx, input)
}

func decodePromptArguments[TIn any](args map[string]string) (TIn, error) {
	var input TIn
	if len(args) == 0 {
		return input, nil
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return input, fmt.Errorf("encoding prompt arguments: %w", err)
	}
	if err := json.Unmarshal(raw, &input); err != nil {
		return input, ValidationError(fmt.Sprintf("invalid prompt arguments: %v", err))
	}
	return input, nil
}

func checkPromptArguments(schema *jsonschema.Schema, args map[string]string) error {
	if schema == nil {
		return nil
	}
	for _, name := range schema.Required {
		value, ok := args[name]
		if !ok {
			return ValidationError(fmt.Sprintf("missing required argument %q", name))
		}
		if property := schema.Properties[name]; property != nil && property.MinLength != nil &&
			len(strings.TrimSpace(value)) < *property.MinLength {
			return ValidationError(fmt.Sprintf("argument %q must not be empty", name))
		}
	}
	return nil
}
