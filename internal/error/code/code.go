package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusBadGateway - 502: upstream failure.
	StatusBadGateway = 502
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding failed.
	ErrBind
	// ErrValidation - 400: request validation failed.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Account error codes (101xxx).
const (
	// ErrUserNotFound - 404: account not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: account already exists.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: incorrect password.
	ErrUserPasswordIncorrect
)

// Visitor error codes (102xxx).
const (
	// ErrVisitorNotFound - 404: visitor not found.
	ErrVisitorNotFound int = iota + 102000
	// ErrVisitorAlreadyCheckedOut - 400: visitor already checked out.
	ErrVisitorAlreadyCheckedOut
	// ErrDecisionTarget - 400: request is missing the id its source writes by.
	ErrDecisionTarget
)

// Upstream source error codes (103xxx).
const (
	// ErrSourceUnavailable - 502: upstream visit API unavailable.
	ErrSourceUnavailable int = iota + 103000
	// ErrSourceWrite - 502: upstream approval write failed.
	ErrSourceWrite
)

// Gate pass error codes (104xxx).
const (
	// ErrPassNotFound - 404: gate pass not found or expired.
	ErrPassNotFound int = iota + 104000
	// ErrPassStore - 500: gate pass store unavailable.
	ErrPassStore
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
