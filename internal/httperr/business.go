package httperr

import "errors"

// BusinessError is a rule violation from the booking domain, identified by
// its code alone. Usecases return these for anything the caller did wrong
// (bad date, unknown payment method, appointment not found); handlers map
// the codes onto HTTP statuses.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness wraps a code as a BusinessError.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err is a BusinessError carrying exactly code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
