package finman

import "errors"

// Failure kinds shared by every operation. Callers match them with
// errors.Is; none of them should ever crash the process.
var (
	// ErrInvalid reports user input that failed validation (amount, date,
	// category, name). Always recoverable: reject the single operation.
	ErrInvalid = errors.New("invalid input")

	// ErrNotFound reports a referenced transaction or goal that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden reports a record owned by a different user than the caller.
	ErrForbidden = errors.New("forbidden")

	// ErrCancelled reports a destructive operation aborted for lack of an
	// exact affirmative confirmation.
	ErrCancelled = errors.New("cancelled")

	// ErrPersistence reports a load or save failure on the backing files.
	ErrPersistence = errors.New("persistence failure")

	// ErrCredentials reports a failed login. It deliberately does not
	// distinguish an unknown username from a wrong password.
	ErrCredentials = errors.New("invalid credentials")
)
