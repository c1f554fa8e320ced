package scheduling

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the API layer. Suspended and SubscriptionExpired are
// terminal until an admin intervenes; SlotConflict is retryable with another
// slot.
const (
	CodeNotFound            = "notFound"
	CodeSuspended           = "suspended"
	CodeSubscriptionExpired = "subscriptionExpired"
	CodeServiceNotFound     = "serviceNotFound"
	CodeSlotConflict        = "slotConflict"
	CodeInvalidFormat       = "invalidFormat"
	CodeInvalidTransition   = "invalidTransition"
)

type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) *SchedulingError {
	return &SchedulingError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrCode returns the scheduling error code carried by err, or "" when err is
// not a SchedulingError.
func ErrCode(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
