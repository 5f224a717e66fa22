package errors

import "errors"

// re-exported so handlers don't need both error packages imported
func As(err error, target any) bool {
	return errors.As(err, target)
}

// re-exported stdlib errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}
