package usegrant

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
var ErrMissingAPIKey = errors.New("usegrant: API key is required")

// APIError represents a non-2xx response from the UseGrant API.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Code is the machine-readable error code, when the API sends one.
	Code string

	// Message is the human-readable error description.
	Message string

	// RequestID is the X-Request-Id sent with the failed request.
	RequestID string
}

func (err *APIError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "usegrant: HTTP %d", err.StatusCode)
	if err.Code != "" {
		fmt.Fprintf(&builder, " [%s]", err.Code)
	}
	if err.Message != "" {
		fmt.Fprintf(&builder, ": %s", err.Message)
	}
	return builder.String()
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	return apiError.StatusCode == http.StatusUnauthorized || apiError.StatusCode == http.StatusForbidden
}

// parseAPIError builds an APIError from a response body. The API answers
// with {"error": {"code", "message"}} or a flat {"code", "message"}; any
// other body becomes the message verbatim.
func parseAPIError(statusCode int, requestID string, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode, RequestID: requestID}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != nil {
			apiError.Code = envelope.Error.Code
			apiError.Message = envelope.Error.Message
		} else {
			apiError.Code = envelope.Code
			apiError.Message = envelope.Message
		}
	}
	if apiError.Message == "" {
		apiError.Message = strings.TrimSpace(string(body))
	}
	if apiError.Message == "" {
		apiError.Message = http.StatusText(statusCode)
	}
	return apiError
}
