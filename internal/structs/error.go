package structs

import "errors"

var (
	ErrBadRequest       = errors.New("bad request")
	ErrStoreUnreachable = errors.New("could not reach server")
	ErrEmptyCart        = errors.New("cart is empty")
)

// RejectionError is a well-formed store response refusing the operation
// (success:false). Its message is the server's, surfaced verbatim. Distinct
// from ErrStoreUnreachable: callers may show it to the user as-is.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// AsRejection reports whether err is a business rejection.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
