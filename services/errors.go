package services

import (
	"errors"
	"fmt"
)

// ValidationError reports caller arguments that break a precondition. It is
// always returned before the repository is touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var verr *ValidationError

	return errors.As(err, &verr)
}
