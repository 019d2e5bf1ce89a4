package usegrantmcp

import (
	"errors"
	"fmt"
)

// ToolError represents an argument problem reported back to the client
// rather than an API failure.
type ToolError struct {
	Message string
	Code    string // Optional error code for categorization
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

// ValidationError is a convenience function for creating validation tool errors
func ValidationError(message string) *ToolError {
	return &ToolError{Message: message, Code: "VALIDATION_ERROR"}
}

// Sentinel errors for configuration validation
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrEmptyVersion    = errors.New("version cannot be empty")
	ErrEmptyToolName   = errors.New("tool name cannot be empty")
	ErrEmptyPromptName = errors.New("prompt name cannot be empty")
	ErrNilFunction     = errors.New("function cannot be nil")
	ErrNilServer       = errors.New("server cannot be nil")
	ErrNilLogger       = errors.New("logger cannot be nil")
	ErrNilAPI          = errors.New("usegrant API cannot be nil")
	ErrDuplicateTool   = errors.New("tool already registered")
	ErrDuplicatePrompt = errors.New("prompt already registered")
)
