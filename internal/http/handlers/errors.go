// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and are returned in the `code` field of the
// ErrorResponse envelope (see fail() in response.go). Clients branch on the
// code; the message is for humans.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "not_found",
//	  "message": "platform not found"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeValidation    = "validation_failed"
	ErrCodeUnknownMetric = "unknown_metric"
	ErrCodeInvalidCost   = "invalid_cost_input"
	ErrCodeSamePlatform  = "same_platform"
	ErrCodeCreateFailed  = "create_failed"
	ErrCodeListFailed    = "list_failed"
	ErrCodeExportFailed  = "export_failed"
)
