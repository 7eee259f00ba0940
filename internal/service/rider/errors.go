package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidStatus         = errors.New("invalid application status")

	ErrRiderNotFound     = errors.New("rider not found")
	ErrRiderNotAvailable = errors.New("rider is not available")
	ErrConflict          = errors.New("resource already exists")
)
