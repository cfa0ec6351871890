package api

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"aiengine.app/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"

// ErrorBody carries the machine-readable error code and a caller-safe message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorMeta identifies the service that produced the error.
type ErrorMeta struct {
	Service string `json:"service"`
}

// ErrorResponse is the uniform error envelope for all failure responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
	Meta  ErrorMeta `json:"meta"`
}

// handleError translates application errors into HTTP responses. Probe
// endpoints never produce errors; this boundary serves future business
// routes and option validation.
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *errors.AppError
	var statusCode int
	var message string

	if stderrors.As(err, &appErr) {
		switch appErr.Type {
		case errors.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		default:
			statusCode = http.StatusInternalServerError
			message = "An internal error occurred"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "An internal error occurred"
	}

	code := string(errors.InternalError)
	if appErr != nil {
		code = string(appErr.Type)
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorBody{Code: code, Message: message},
		Meta:  ErrorMeta{Service: s.config.App.Name},
	})
}

// recoveryMiddleware is the outermost error boundary: any panic escaping a
// handler is logged with its context and converted to the uniform
// internal-error envelope. No internal detail reaches the caller.
func (s *Server) recoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("Unhandled exception",
					zap.Any("error", rec),
					zap.String("error_type", fmt.Sprintf("%T", rec)),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("request_id", c.GetString(requestIDKey)),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: ErrorBody{
						Code:    string(errors.InternalError),
						Message: "An internal error occurred",
					},
					Meta: ErrorMeta{Service: s.config.App.Name},
				})
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware honors an inbound X-Request-ID or mints one, so probe
// failures can be correlated across the collaborating services.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
