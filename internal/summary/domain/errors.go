package domain

import "fmt"

// ErrorCategory classifies a failure for the API error payload
type ErrorCategory string

const (
	CategoryInvalidRequest      ErrorCategory = "invalid_request"
	CategoryUnauthorized        ErrorCategory = "unauthorized"
	CategorySummarizationFailed ErrorCategory = "summarization_failed"
	CategoryPersistenceFailed   ErrorCategory = "persistence_failed"
)

// Error is a categorized failure surfaced to the caller as-is,
// never retried internally
type Error struct {
	Category ErrorCategory
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidRequest(message string) *Error {
	return &Error{Category: CategoryInvalidRequest, Message: message}
}

func SummarizationFailed(message string, err error) *Error {
	return &Error{Category: CategorySummarizationFailed, Message: message, Err: err}
}

func PersistenceFailed(message string, err error) *Error {
	return &Error{Category: CategoryPersistenceFailed, Message: message, Err: err}
}

// CategoryOf extracts the category from err, defaulting to persistence_failed
// for uncategorized errors bubbling up from the store
func CategoryOf(err error) ErrorCategory {
	if e, ok := err.(*Error); ok {
		return e.Category
	}
	return CategoryPersistenceFailed
}
