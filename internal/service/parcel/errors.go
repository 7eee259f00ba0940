package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidEmail          = errors.New("invalid sender email")
	ErrInvalidCost           = errors.New("invalid cost")
	ErrInvalidStatus         = errors.New("invalid delivery status")

	ErrParcelNotFound      = errors.New("parcel not found")
	ErrParcelNotDeletable  = errors.New("parcel is paid or assigned and cannot be deleted")
	ErrParcelNotAssignable = errors.New("parcel is not awaiting pickup")
	ErrRiderNotAvailable   = errors.New("rider is not available")
	ErrConflict            = errors.New("resource already exists")
)
