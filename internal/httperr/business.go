package httperr

import "errors"

// BusinessError is a rule violation the caller can act on: the Code is a
// stable machine-readable identifier such as "slot_unavailable".
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a business error with the given code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
