package parcela

import "errors"

// Common installment errors
var (
	// ErrIndexOutOfRange is returned when a draft edit targets an
	// installment index that does not exist.
	ErrIndexOutOfRange = errors.New("parcela index out of range")

	// ErrInvalidStatus is returned when a status outside
	// PENDENTE/PAGO/ATRASADO is applied to an installment.
	ErrInvalidStatus = errors.New("invalid parcela status")

	// ErrNotFound is returned when a sale has no installment with the
	// requested number.
	ErrNotFound = errors.New("parcela not found")
)
