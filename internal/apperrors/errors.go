package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials indicates a failed username/password verification.
// It deliberately does not distinguish between an unknown principal and a
// wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrWeakPassword indicates that a new password failed the strength validator.
var ErrWeakPassword = errors.New("password does not meet strength requirements")

// ErrUnauthenticated indicates that no session exists for the required context.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden indicates that the principal is not allowed to perform the
// operation or touch the record. Handlers mask this as a not-found on
// department-scoped reads so callers cannot probe other departments' data.
var ErrForbidden = errors.New("operation not permitted")

// ErrDuplicatePeriod indicates that the student already submitted a log for
// the requested reporting period.
var ErrDuplicatePeriod = errors.New("log already submitted for this period")

// ErrTokenNotFound indicates that a verification token value is unknown.
var ErrTokenNotFound = errors.New("verification token not found")

// ErrTokenConsumed indicates that the verification token, or its sibling for
// the same log, has already been used.
var ErrTokenConsumed = errors.New("verification token already consumed")

// ErrInvalidState indicates that the log record is no longer in a state that
// permits the requested transition.
var ErrInvalidState = errors.New("log record is not pending")

// ErrAlreadyIssued indicates that an unconsumed verification token pair
// already exists for the log record.
var ErrAlreadyIssued = errors.New("verification token pair already issued")

// AppError wraps an underlying error with an HTTP-ish status code and a
// caller-safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
