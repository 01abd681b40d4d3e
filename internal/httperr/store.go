package httperr

import "errors"

// StoreError carries a machine-readable code out of the fixture store so
// handlers can map it onto an HTTP status without string matching.
type StoreError struct {
	Code string
}

func (e StoreError) Error() string {
	return e.Code
}

func ErrStore(code string) error {
	return StoreError{Code: code}
}

func IsStore(err error, code string) bool {
	var se StoreError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
