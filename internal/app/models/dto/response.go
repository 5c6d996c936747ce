package dto

import "time"

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp,omitempty" example:"2025-04-23T12:01:05.123Z"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// MutationResult reports the outcome of a single-row insert/update/delete.
// Deleting or updating a row that does not exist is a zero-effect success.
type MutationResult struct {
	ID           int64 `json:"id,omitempty" example:"1"`
	AffectedRows int64 `json:"affectedRows" example:"1"`
}
