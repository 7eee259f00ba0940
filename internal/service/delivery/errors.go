package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUndefinedStatus       = errors.New("undefined delivery status")
)
