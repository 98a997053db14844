package display

import (
	"errors"
	"fmt"
)

var (
	// ErrEnumeration wraps failures of the device or mode enumeration that
	// are not the normal end of the list.
	ErrEnumeration = errors.New("display enumeration failed")

	// ErrUnexpected wraps panics recovered from a backend call.
	ErrUnexpected = errors.New("unexpected display backend failure")

	// ErrNoDevices is returned when an operation needs a device and none is active.
	ErrNoDevices = errors.New("no active display devices")
)

// ValidationError reports a request that was rejected before any OS call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
