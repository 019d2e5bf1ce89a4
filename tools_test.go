package usegrantmcp

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usegrant/usegrant-mcp/internal/telemetry"
)

// Test types for tool examples
type EchoInput struct {
	Text string `json:"text" jsonschema:"Text to echo"`
}

// Test helper functions
func echoFunc(ctx context.Context, input EchoInput) (string, error) {
	return input.Text, nil
}

func TestHandlerConstruction(t *testing.T) {
	tests := []struct {
		name           string
		opts           []Option
		wantErr        error
		wantNilHandler bool
	}{
		{
			name:    "basic handler",
			opts:    nil,
			wantErr: nil,
		},
		{
			name:    "with name and version",
			opts:    []Option{WithName("test-server"), WithVersion("1.2.3"), WithInstructions("")},
			wantErr: nil,
		},
		{
			name:    "with logger and metrics",
			opts:    []Option{WithLogger(slog.Default()), WithMetrics(telemetry.NewMetrics())},
			wantErr: nil,
		},
		{
			name:           "empty name error",
			opts:           []Option{WithName("")},
			wantErr:        ErrEmptyName,
			wantNilHandler: true,
		},
		{
			name:           "empty version error",
			opts:           []Option{WithVersion("")},
			wantErr:        ErrEmptyVersion,
			wantNilHandler: true,
		},
		{
			name:           "nil server error",
			opts:           []Option{WithServer(nil)},
			wantErr:        ErrNilServer,
			wantNilHandler: true,
		},
		{
			name:           "nil logger error",
			opts:           []Option{WithLogger(nil)},
			wantErr:        ErrNilLogger,
			wantNilHandler: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := New(tt.opts...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantNilHandler {
					assert.Nil(t, handler)
				}
			} else {
				require.NoError(t, err)
				assert.NotNil(t, handler)
				assert.NotNil(t, handler.GetServer())
			}
		})
	}
}

func TestWithTool(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		fn       ToolFunc[EchoInput]
		wantErr  error
	}{
		{
			name:     "valid tool",
			toolName: "echo",
			fn:       echoFunc,
		},
		{
			name:     "empty tool name error",
			toolName: "",
			fn:       echoFunc,
			wantErr:  ErrEmptyToolName,
		},
		{
			name:     "nil function error",
			toolName: "echo",
			fn:       nil,
			wantErr:  ErrNilFunction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := New(WithTool(tt.toolName, "Echo input text", tt.fn))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"echo"}, handler.Tools())
		})
	}
}

func TestWithTool_Duplicate(t *testing.T) {
	_, err := New(
		WithTool("echo", "first", echoFunc),
		WithTool("echo", "second", echoFunc),
	)
	require.ErrorIs(t, err, ErrDuplicateTool)
	assert.Contains(t, err.Error(), "echo")
}

func TestWithPrompt_Validation(t *testing.T) {
	promptFn := func(ctx context.Context, input ValidateAccessTokenArgs) (string, error) {
		return "", nil
	}

	_, err := New(WithPrompt("", "desc", promptFn))
	require.ErrorIs(t, err, ErrEmptyPromptName)

	_, err = New(WithPrompt[ValidateAccessTokenArgs]("p", "desc", nil))
	require.ErrorIs(t, err, ErrNilFunction)

	_, err = New(WithPrompt("p", "desc", promptFn), WithPrompt("p", "desc", promptFn))
	require.ErrorIs(t, err, ErrDuplicatePrompt)
}

func TestToolRegistration(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-server",
		Version: "1.0.0",
	}, nil)

	handler, err := New(
		WithServer(server),
		WithUseGrant(newFixtureAPI()),
	)

	require.NoError(t, err)
	assert.Equal(t, server, handler.GetServer())
	assert.Len(t, handler.Tools(), 25)
}

func TestTools_ReturnsCopy(t *testing.T) {
	handler, err := New(WithTool("echo", "Echo", echoFunc))
	require.NoError(t, err)

	tools := handler.Tools()
	tools[0] = "mutated"
	assert.Equal(t, []string{"echo"}, handler.Tools())
}

func TestOptionOrderIndependent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// The logger is applied after the tool; the tool must still use it.
	handler, err := New(
		WithTool("echo", "Echo", echoFunc),
		WithLogger(logger),
	)
	require.NoError(t, err)

	result := callTool(t, handler, "echo", map[string]any{"text": "hi"})
	assert.Equal(t, "hi", resultText(t, result))
	assert.Contains(t, buf.String(), "tool=echo")
}

func TestJSONText(t *testing.T) {
	text, err := jsonText(map[string]any{"id": "prov_1", "tags": []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"prov_1\",\n  \"tags\": [\n    \"a\"\n  ]\n}", text)

	text, err = jsonText(map[string]string{"redirect": "https://a.test/cb?x=1&y=<2>"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"redirect\": \"https://a.test/cb?x=1&y=<2>\"\n}", text)

	_, err = jsonText(make(chan int))
	require.Error(t, err)
}

func TestDeletedText(t *testing.T) {
	assert.Equal(t, "Client cli_1 deleted", deletedText("Client", "cli_1"))
}
