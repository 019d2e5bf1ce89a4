package usegrantmcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolError_Error(t *testing.T) {
	tests := []struct {
		name     string
		toolErr  *ToolError
		expected string
	}{
		{
			name:     "message only",
			toolErr:  &ToolError{Message: "something went wrong"},
			expected: "something went wrong",
		},
		{
			name:     "message with code",
			toolErr:  &ToolError{Message: "validation failed", Code: "VALIDATION_ERROR"},
			expected: "[VALIDATION_ERROR] validation failed",
		},
		{
			name:     "empty message",
			toolErr:  &ToolError{Message: ""},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.toolErr.Error())
		})
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError(`missing required argument "tenantId"`)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, `[VALIDATION_ERROR] missing required argument "tenantId"`, err.Error())
}
