package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Validation Cursor Conflict",
			code:     ValidationCursorConflict,
			expected: "Only one of 'before' and 'after' may be set",
		},
		{
			name:     "Query Not Ready",
			code:     QueryNotReady,
			expected: "No authorization token is available yet",
		},
		{
			name:     "Upstream Unreachable",
			code:     UpstreamUnreachable,
			expected: "Sales API is unreachable",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	validCodes := []ErrorCode{
		AuthMissingToken,
		AuthInvalidTokenFormat,
		AuthExpiredToken,
		ValidationGeneral,
		ValidationInvalidDate,
		ValidationInvalidAmount,
		ValidationInvalidSort,
		ValidationCursorConflict,
		ValidationInvalidEmail,
		QueryNotReady,
		QueryFailed,
		UpstreamUnreachable,
		UpstreamBadStatus,
		UpstreamInvalidReply,
		SessionNotFound,
		SystemInternalError,
		SystemServiceUnavailable,
		SystemRateLimitExceeded,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "Code %s should be valid", code)
	}
}

// TestIsValidErrorCode_InvalidCodes tests validation of invalid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCodes() {
	invalidCodes := []ErrorCode{
		"",
		"AUTH_999",
		"NOT_A_CODE",
		"validation_001",
	}

	for _, code := range invalidCodes {
		s.False(IsValidErrorCode(code), "Code %q should be invalid", code)
	}
}
