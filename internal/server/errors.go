package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	billingdomain "github.com/strongfit/studio/internal/billing/domain"
	evaluationdomain "github.com/strongfit/studio/internal/evaluation/domain"
	exercisedomain "github.com/strongfit/studio/internal/exercise/domain"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

// ErrorHandlingMiddleware turns errors recorded on the context into the
// single JSON error shape. Store failures are logged with their cause but
// the response body stays generic.
func ErrorHandlingMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.Error(lastErr.Err),
			)
		}
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: notFoundMessage(err),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, athletedomain.ErrInvalidID),
		errors.Is(err, athletedomain.ErrInvalidName),
		errors.Is(err, athletedomain.ErrNothingToApply),
		errors.Is(err, exercisedomain.ErrInvalidID),
		errors.Is(err, exercisedomain.ErrInvalidName),
		errors.Is(err, exercisedomain.ErrNothingToApply),
		errors.Is(err, sessiondomain.ErrInvalidID),
		errors.Is(err, sessiondomain.ErrInvalidAthlete),
		errors.Is(err, sessiondomain.ErrInvalidName),
		errors.Is(err, sessiondomain.ErrInvalidTime),
		errors.Is(err, sessiondomain.ErrNothingToApply),
		errors.Is(err, evaluationdomain.ErrInvalidID),
		errors.Is(err, evaluationdomain.ErrInvalidAthlete),
		errors.Is(err, evaluationdomain.ErrNothingToApply),
		errors.Is(err, billingdomain.ErrInvalidAthleteID),
		errors.Is(err, billingdomain.ErrInvalidAdjustmentID),
		errors.Is(err, billingdomain.ErrInvalidSessionID):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, athletedomain.ErrNotFound),
		errors.Is(err, exercisedomain.ErrNotFound),
		errors.Is(err, sessiondomain.ErrNotFound),
		errors.Is(err, evaluationdomain.ErrNotFound),
		errors.Is(err, billingdomain.ErrAthleteNotFound),
		errors.Is(err, billingdomain.ErrAdjustmentNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, athletedomain.ErrNotFound),
		errors.Is(err, billingdomain.ErrAthleteNotFound):
		return "athlete not found"
	case errors.Is(err, exercisedomain.ErrNotFound):
		return "exercise not found"
	case errors.Is(err, sessiondomain.ErrNotFound):
		return "training session not found"
	case errors.Is(err, evaluationdomain.ErrNotFound):
		return "evaluation not found"
	case errors.Is(err, billingdomain.ErrAdjustmentNotFound):
		return "adjustment not found"
	default:
		return "not found"
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}
