package payment

import "errors"

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidParcelID  = errors.New("invalid parcel id")
	ErrInvalidEmail     = errors.New("invalid email")

	ErrPaymentNotFound      = errors.New("payment not found")
	ErrDuplicateTransaction = errors.New("transaction already recorded")
	ErrEmailMismatch        = errors.New("requested email does not match the authenticated caller")
)
