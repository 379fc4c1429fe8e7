package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidTokenFormat ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral        ErrorCode = "VALIDATION_001"
	ValidationInvalidDate    ErrorCode = "VALIDATION_002"
	ValidationInvalidAmount  ErrorCode = "VALIDATION_003"
	ValidationInvalidSort    ErrorCode = "VALIDATION_004"
	ValidationCursorConflict ErrorCode = "VALIDATION_005"
	ValidationInvalidEmail   ErrorCode = "VALIDATION_006"
)

// Query error codes (QUERY_*)
const (
	QueryNotReady ErrorCode = "QUERY_001"
	QueryFailed   ErrorCode = "QUERY_002"
)

// Upstream error codes (UPSTREAM_*)
const (
	UpstreamUnreachable  ErrorCode = "UPSTREAM_001"
	UpstreamBadStatus    ErrorCode = "UPSTREAM_002"
	UpstreamInvalidReply ErrorCode = "UPSTREAM_003"
)

// Session error codes (SESSION_*)
const (
	SessionNotFound ErrorCode = "SESSION_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthExpiredToken:       "Authorization token has expired",

	// Validation errors
	ValidationGeneral:        "Validation failed",
	ValidationInvalidDate:    "Invalid date format, use YYYY-MM-DD",
	ValidationInvalidAmount:  "Invalid amount format",
	ValidationInvalidSort:    "Invalid sort field or direction",
	ValidationCursorConflict: "Only one of 'before' and 'after' may be set",
	ValidationInvalidEmail:   "Invalid email address format",

	// Query errors
	QueryNotReady: "No authorization token is available yet",
	QueryFailed:   "Sales query failed",

	// Upstream errors
	UpstreamUnreachable:  "Sales API is unreachable",
	UpstreamBadStatus:    "Sales API returned an error status",
	UpstreamInvalidReply: "Sales API returned an unreadable response",

	// Session errors
	SessionNotFound: "Dashboard session not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
