package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthAccountDisabled    ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_002"
	ValidationOutOfRange    ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationWeakPassword  ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserNotFound               ErrorCode = "USER_001"
	UserEmailExists            ErrorCode = "USER_002"
	UserUsernameExists         ErrorCode = "USER_003"
	UserInvalidCurrentPassword ErrorCode = "USER_004"
	UserSamePassword           ErrorCode = "USER_005"
)

// Bank account error codes (BANK_*)
const (
	BankAccountNotFound      ErrorCode = "BANK_001"
	BankAccountAlreadyLinked ErrorCode = "BANK_002"
	BankNoActiveConnection   ErrorCode = "BANK_003"
	BankItemAlreadyLinked    ErrorCode = "BANK_004"
)

// Roundup error codes (ROUNDUP_*)
const (
	RoundupInvalidRule     ErrorCode = "ROUNDUP_001"
	RoundupInvalidBoundary ErrorCode = "ROUNDUP_002"
	RoundupInvalidAmount   ErrorCode = "ROUNDUP_003"
	RoundupNotFound        ErrorCode = "ROUNDUP_004"
)

// Upstream error codes (UPSTREAM_*)
const (
	UpstreamUnavailable ErrorCode = "UPSTREAM_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRouteNotFound      ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid credentials",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthAccountDisabled:    "User account is disabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationWeakPassword:  "Password must be at least 8 characters long and contain an uppercase letter, a lowercase letter and a digit",

	// User errors
	UserNotFound:               "User not found",
	UserEmailExists:            "An account with this email already exists",
	UserUsernameExists:         "This username is already taken",
	UserInvalidCurrentPassword: "Current password is incorrect",
	UserSamePassword:           "New password must differ from the current password",

	// Bank account errors
	BankAccountNotFound:      "Bank account not found",
	BankAccountAlreadyLinked: "Bank account already exists",
	BankNoActiveConnection:   "No active bank connection found",
	BankItemAlreadyLinked:    "This bank connection is already linked",

	// Roundup errors
	RoundupInvalidRule:     "Rounding rule must be 'fixed' or 'custom'",
	RoundupInvalidBoundary: "Custom rounding amount must be a positive amount with at most 2 decimal places",
	RoundupInvalidAmount:   "Amount must be positive with at most 2 decimal places",
	RoundupNotFound:        "Roundup calculation not found",

	// Upstream errors
	UpstreamUnavailable: "Bank data provider is unavailable. Please try again later",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRouteNotFound:      "Resource not found",
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
