package models

import "errors"

// ValidationError carries the literal user-facing message for a missing or
// malformed field. Handlers return it as-is with status 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

var (
	// ErrNotAuthorized covers both a transfer that does not exist and a
	// transfer owned by another user. The two cases are deliberately
	// indistinguishable so that ids of other users cannot be probed.
	ErrNotAuthorized = errors.New("Não autorizado")

	// ErrResourceNotOwned marks access to an account or transaction that
	// does not belong to the requesting user.
	ErrResourceNotOwned = errors.New("Este recurso não pertence ao usuário")
)
