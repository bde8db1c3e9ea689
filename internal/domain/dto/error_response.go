package dto

import "time"

// ErrorResponse is the standard error body returned by every endpoint.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid period format"` // Human-readable summary
	ErrorDetails string    `json:"error,omitempty" example:"parse error"`   // Underlying error detail, when safe to expose
	Timestamp    time.Time `json:"timestamp"`                               // Server time the error was produced
}

// Error implements the error interface so handlers can pass the response
// around as a regular error value.
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
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
