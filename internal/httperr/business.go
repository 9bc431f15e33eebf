package httperr

import "errors"

// Business error codes. All are expected, user-facing outcomes; none should
// be retried by the core.
const (
	CodeClientNotFound      = "client_not_found"
	CodeServiceNotFound     = "service_not_found"
	CodeAppointmentNotFound = "appointment_not_found"

	CodeInvalidArgument = "invalid_argument"
	CodeForbidden       = "forbidden"

	CodeSlotUnavailable         = "slot_unavailable"
	CodeAlreadyCancelled        = "already_cancelled"
	CodeTooLateToCancel         = "too_late_to_cancel"
	CodeAlreadyCompleted        = "already_completed"
	CodeCannotCompleteCancelled = "cannot_complete_cancelled"
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

// BusinessCode extracts the code from a business error, or "" when err is not
// one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
