package model

import "fmt"

const (
	// ErrCodeBadRequest is returned when the request body cannot be parsed
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeBadOptions is returned when classification options are out of range
	ErrCodeBadOptions = "BAD_OPTIONS"
	// ErrCodeTooLarge is returned when a batch exceeds the configured limit
	ErrCodeTooLarge = "TOO_LARGE"
	// ErrCodeForbidden is returned by auth and rate limiting middlewares
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeLimitExceeded is returned when the rate limit is exceeded
	ErrCodeLimitExceeded = "LIMIT_EXCEEDED"
)

// Error model
type Error struct {
	Code    string `json:"code"`    // error code, e.g. BAD_OPTIONS
	Message string `json:"message"` // human-readable message
}

// Error string
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
