package httperr

import "errors"

// StorageError marks a failure of the persistence collaborator. It is never
// retried here; callers get it back unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e StorageError) Unwrap() error {
	return e.Err
}

func ErrStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return StorageError{Op: op, Err: err}
}

func IsStorage(err error) bool {
	var se StorageError
	return errors.As(err, &se)
}
