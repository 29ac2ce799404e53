package domain

import "errors"

// Business error kinds surfaced to API clients. Any failure outside this
// taxonomy is reported as KindInternalError without internal detail.
const (
	KindInvalidAccount  = "INVALID_ACCOUNT"
	KindInactiveAccount = "INACTIVE_ACCOUNT"
	KindInvalidValue    = "INVALID_VALUE"
	KindInvalidType     = "INVALID_TYPE"
	KindInternalError   = "INTERNAL_ERROR"

	// KindInvalidRequest covers transport-level rejections, requests the
	// business rules never get to see.
	KindInvalidRequest = "INVALID_REQUEST"
)

// BusinessError is a client-caused rule violation, distinct from
// infrastructure failure.
type BusinessError struct {
	Kind    string
	Message string
}

func (e *BusinessError) Error() string {
	return e.Kind + ": " + e.Message
}

var (
	// ErrInvalidAccount means the referenced account does not exist.
	ErrInvalidAccount = &BusinessError{Kind: KindInvalidAccount, Message: "the account does not exist"}
	// ErrInactiveAccount means the referenced account exists but is inactive.
	ErrInactiveAccount = &BusinessError{Kind: KindInactiveAccount, Message: "the account is inactive"}
	// ErrInvalidValue means the movement amount is not strictly positive.
	ErrInvalidValue = &BusinessError{Kind: KindInvalidValue, Message: "the movement amount must be greater than zero"}
	// ErrInvalidType means the movement direction is not 'C' or 'D'.
	ErrInvalidType = &BusinessError{Kind: KindInvalidType, Message: "the movement type must be 'C' or 'D'"}
)

// Storage errors.
var (
	// ErrAccountNotFound is returned by the store when an account lookup
	// matches no row.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateKey is returned by the store on a uniqueness violation.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrIdempotencyNotFound is returned when no idempotency record exists
	// for a key.
	ErrIdempotencyNotFound = errors.New("idempotency record not found")
)

// AsBusinessError unwraps err into a *BusinessError if it is one.
func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}

	return nil, false
}
