package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// failing endpoint.
//
// Fields:
//   - Message: human-readable summary, safe to expose to callers.
//   - ErrorDetails: optional detail string from the underlying error.
//   - Timestamp: when the error response was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid request body"`
	ErrorDetails string    `json:"error,omitempty" example:"natal.date must match YYYY-MM-DD"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through error-typed plumbing.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
