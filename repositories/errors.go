package repositories

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("record not found")

// DataAccessError wraps a failure of the underlying store.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func dataAccessError(op string, err error) error {
	if err == nil {
		return nil
	}

	return &DataAccessError{Op: op, Err: err}
}
