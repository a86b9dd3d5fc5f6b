package httperr

import "errors"

// Business error codes shared between the reservation engine and the
// HTTP layer. Each code maps to exactly one HTTP status in the handlers.
const (
	CodeHallNotFound        = "hall_not_found"
	CodeReservationNotFound = "reservation_not_found"
	CodeInvalidInterval     = "invalid_interval"
	CodeInvalidStatus       = "invalid_status"
	CodeSlotTaken           = "slot_taken"
	CodeForbidden           = "forbidden"
	CodeInvalidTransition   = "invalid_transition"
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

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
