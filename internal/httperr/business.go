package httperr

import "errors"

// Stable error codes returned to clients.
const (
	CodeValidation         = "validation_error"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeJobNotFound        = "job_not_found"
	CodeReportNotFound     = "report_not_found"
	CodeUserNotFound       = "user_not_found"
	CodeDuplicateUser      = "duplicate_user"
	CodeDuplicateReport    = "duplicate_report"
	CodeUploadFailed       = "upload_failed"
	CodePartialWrite       = "partial_write"
	CodeInternal           = "internal_error"
)

type BusinessError struct {
	Code string
	// Message is safe to show to clients; Err never leaves the process.
	Message string
	Err     error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

// Wrap tags a lower level error with a business code.
func Wrap(code string, err error) error {
	return BusinessError{Code: code, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or CodeInternal.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeInternal
}
