package usegrantmcp

import (
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usegrant/usegrant-mcp/internal/telemetry"
)

// WithName sets the server name
func WithName(name string) Option {
	return func(cfg *handlerConfig) error {
		if name == "" {
			return ErrEmptyName
		}
		cfg.name = name
		return nil
	}
}

// WithVersion sets the server version
func WithVersion(version string) Option {
	return func(cfg *handlerConfig) error {
		if version == "" {
			return ErrEmptyVersion
		}
		cfg.version = version
		return nil
	}
}

// WithInstructions sets the instructions sent to clients on initialize.
func WithInstructions(instructions string) Option {
	return func(cfg *handlerConfig) error {
		cfg.instructions = instructions
		return nil
	}
}

// WithServer allows injecting a custom server for testing
func WithServer(server *mcp.Server) Option {
	return func(cfg *handlerConfig) error {
		if server == nil {
			return ErrNilServer
		}
		cfg.server = server
		return nil
	}
}

// WithLogger sets the logger used for per-call logging.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *handlerConfig) error {
		if logger == nil {
			return ErrNilLogger
		}
		cfg.logger = logger
		return nil
	}
}

// WithMetrics records every tool and prompt call. A nil collector disables
// recording.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(cfg *handlerConfig) error {
		cfg.metrics = metrics
		return nil
	}
}

// WithTool adds a type-safe tool whose input schema is generated from TIn.
func WithTool[TIn any](name, description string, fn ToolFunc[TIn]) Option {
	return func(cfg *handlerConfig) error {
		if name == "" {
			return ErrEmptyToolName
		}
		if fn == nil {
			return ErrNilFunction
		}
		if registered(cfg.tools, name) {
			return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
		}

		inputSchema, err := GenerateSchema[TIn]()
		if err != nil {
			return fmt.Errorf("tool %s: generating input schema: %w", name, err)
		}

		register := func(server *mcp.Server, logger *slog.Logger, metrics *telemetry.Metrics) {
			tool := &mcp.Tool{
				Name:        name,
				Description: description,
				InputSchema: inputSchema,
			}
			mcp.AddTool(server, tool, createTypedHandler(name, fn, logger, metrics))
		}

		cfg.tools = append(cfg.tools, registration{name: name, register: register})
		return nil
	}
}

// WithPrompt adds a prompt whose arguments are derived from the string
// fields of TIn.
func WithPrompt[TIn any](name, description string, fn PromptFunc[TIn]) Option {
	return func(cfg *handlerConfig) error {
		if name == "" {
			return ErrEmptyPromptName
		}
		if fn == nil {
			return ErrNilFunction
		}
		if registered(cfg.prompts, name) {
			return fmt.Errorf("%w: %s", ErrDuplicatePrompt, name)
		}

		argSchema, err := GenerateSchema[TIn]()
		if err != nil {
			return fmt.Errorf("prompt %s: generating argument schema: %w", name, err)
		}

		register := func(server *mcp.Server, logger *slog.Logger, metrics *telemetry.Metrics) {
			prompt := &mcp.Prompt{
				Name:        name,
				Description: description,
				Arguments:   promptArguments(argSchema),
			}
			server.AddPrompt(prompt, createPromptHandler(name, description, argSchema, fn, logger, metrics))
		}

		cfg.prompts = append(cfg.prompts, registration{name: name, register: register})
		return nil
	}
}

// WithUseGrant registers the full UseGrant tool and prompt catalog backed
// by api.
func WithUseGrant(api API) Option {
	return func(cfg *handlerConfig) error {
		if api == nil {
			return ErrNilAPI
		}
		for _, opt := range catalogOptions(api) {
			if err := opt(cfg); err != nil {
				return err
			}
		}
		return nil
	}
}

func registered(regs []registration, name string) bool {
	for _, reg := range regs {
		if reg.name == name {
			return true
		}
	}
	return false
}
