package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "failed to bind request body",
	ErrValidation:      "request validation failed",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "request rate too high",

	// Accounts
	ErrUserNotFound:          "account not found",
	ErrUserAlreadyExist:      "account already exists",
	ErrUserPasswordIncorrect: "incorrect password",

	// Visitors
	ErrVisitorNotFound:          "visitor not found",
	ErrVisitorAlreadyCheckedOut: "visitor already checked out",
	ErrDecisionTarget:           "visit request is missing the id its source writes by",

	// Upstream sources
	ErrSourceUnavailable: "upstream visit API unavailable",
	ErrSourceWrite:       "upstream approval write failed",

	// Gate passes
	ErrPassNotFound: "gate pass not found or expired",
	ErrPassStore:    "gate pass store unavailable",

	// Database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Accounts
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// Visitors
	ErrVisitorNotFound:          StatusNotFound,
	ErrVisitorAlreadyCheckedOut: StatusBadRequest,
	ErrDecisionTarget:           StatusBadRequest,

	// Upstream sources
	ErrSourceUnavailable: StatusBadGateway,
	ErrSourceWrite:       StatusBadGateway,

	// Gate passes
	ErrPassNotFound: StatusNotFound,
	ErrPassStore:    StatusInternalServerError,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
