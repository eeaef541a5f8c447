package errors

import (
	"strings"
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
			name:     "Account Invalid Amount",
			code:     AccountInvalidAmount,
			expected: "Amount must be positive",
		},
		{
			name:     "Account Insufficient Funds",
			code:     AccountInsufficientFunds,
			expected: "Insufficient funds",
		},
		{
			name:     "Account Same Account",
			code:     AccountSameAccount,
			expected: "Cannot transfer to the same account",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

// TestIsValidErrorCode tests validation of registered and unknown codes
func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range []ErrorCode{AccountInvalidAmount, AccountInsufficientFunds, AccountSameAccount, ValidationGeneral} {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}

	for _, code := range []ErrorCode{"INVALID_001", "", "ACCOUNT_999"} {
		s.Run("invalid "+string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	testCases := []struct {
		prefix string
		codes  []ErrorCode
	}{
		{prefix: "ACCOUNT_", codes: []ErrorCode{AccountInvalidAmount, AccountInsufficientFunds, AccountSameAccount}},
		{prefix: "VALIDATION_", codes: []ErrorCode{ValidationGeneral}},
	}

	for _, tc := range testCases {
		for _, code := range tc.codes {
			s.True(strings.HasPrefix(string(code), tc.prefix), "Code %s should start with %s", code, tc.prefix)
		}
	}
}
