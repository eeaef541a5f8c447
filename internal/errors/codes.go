package errors

// ErrorCode represents a standardized error code used throughout the ledger
type ErrorCode string

// Account error codes (ACCOUNT_*)
const (
	AccountInvalidAmount     ErrorCode = "ACCOUNT_001"
	AccountInsufficientFunds ErrorCode = "ACCOUNT_002"
	AccountSameAccount       ErrorCode = "ACCOUNT_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral ErrorCode = "VALIDATION_001"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AccountInvalidAmount:     "Amount must be positive",
	AccountInsufficientFunds: "Insufficient funds",
	AccountSameAccount:       "Cannot transfer to the same account",

	ValidationGeneral: "Validation failed",
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
