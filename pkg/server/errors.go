package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/NVIDIA/stateview/pkg/errors"
	"github.com/NVIDIA/stateview/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body for all error replies.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps a structured error code to an HTTP status.
// Unknown codes map to 500.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may usefully retry a request
// that failed with the given code.
func retryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeTimeout,
		errors.ErrCodeUnavailable,
		errors.ErrCodeRateLimitExceeded,
		errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, with the second taking precedence
// on key collisions. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response with the given status and
// code. The request ID is taken from the request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	resp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, resp)
}

// WriteErrorFromErr writes an error response derived from err. Structured
// errors carry their own code, message, and context; anything else is
// reported as a retryable internal error with the fallback message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		merged := mergeDetails(se.Context, details)
		if se.Cause != nil {
			if merged == nil {
				merged = make(map[string]any, 1)
			}
			merged["error"] = se.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), merged)
		return
	}

	merged := mergeDetails(details, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
		fallbackMessage, true, merged)
}
