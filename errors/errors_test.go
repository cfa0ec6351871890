package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(ConfigurationError, "config processing failed", cause)
			},
			expected: "CONFIGURATION_ERROR: config processing failed (caused by: original error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	tests := []struct {
		name  string
		setup func() (*AppError, error)
	}{
		{
			name: "ErrorWithCause",
			setup: func() (*AppError, error) {
				cause := fmt.Errorf("original error")
				err := Wrap(InternalError, "unexpected failure", cause)
				return err, cause
			},
		},
		{
			name: "ErrorWithoutCause",
			setup: func() (*AppError, error) {
				err := New(ValidationError, "field is required")
				return err, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err, expectedCause := tt.setup()
			unwrapped := err.Unwrap()
			assert.Equal(t, expectedCause, unwrapped)
		})
	}
}

func TestNew(t *testing.T) {
	err := New(ValidationError, "invalid request")

	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "invalid request", err.Message)
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := Wrap(ConfigurationError, "config validation failed", cause)

	assert.Equal(t, ConfigurationError, err.Type)
	assert.Equal(t, "config validation failed", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		expectedMsg  string
		hasCause     bool
	}{
		{
			name: "NewValidationError",
			constructor: func() *AppError {
				return NewValidationError("field is required")
			},
			expectedType: ValidationError,
			expectedMsg:  "field is required",
			hasCause:     false,
		},
		{
			name: "NewConfigurationError",
			constructor: func() *AppError {
				cause := fmt.Errorf("missing env var")
				return NewConfigurationError("config loading failed", cause)
			},
			expectedType: ConfigurationError,
			expectedMsg:  "config loading failed",
			hasCause:     true,
		},
		{
			name: "NewInternalError",
			constructor: func() *AppError {
				cause := fmt.Errorf("clock unavailable")
				return NewInternalError("unexpected failure", cause)
			},
			expectedType: InternalError,
			expectedMsg:  "unexpected failure",
			hasCause:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()

			assert.Equal(t, tt.expectedType, err.Type)
			assert.Equal(t, tt.expectedMsg, err.Message)

			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"ValidationError", ValidationError, "VALIDATION_ERROR"},
		{"ConfigurationError", ConfigurationError, "CONFIGURATION_ERROR"},
		{"InternalError", InternalError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errorType))
		})
	}
}
