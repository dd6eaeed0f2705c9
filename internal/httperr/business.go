package httperr

import "errors"

// Business error codes surfaced to clients.
const (
	CodeClientInUse         = "client_in_use"
	CodeJobAlreadyCompleted = "job_already_completed"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness reports whether err carries a business code.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// ErrMissingID is returned for update requests without a usable id.
var ErrMissingID = errors.New("ID is required")

// InvalidBodyError marks a request body that could not be decoded.
type InvalidBodyError struct {
	Err error
}

func (e InvalidBodyError) Error() string {
	return "invalid body: " + e.Err.Error()
}

func (e InvalidBodyError) Unwrap() error {
	return e.Err
}

func IsInvalidBody(err error) bool {
	var ib InvalidBodyError
	return errors.As(err, &ib)
}
