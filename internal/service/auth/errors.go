package auth

import "errors"

var (
	// ErrUnauthorized намеренно не несет деталей: наружу всегда уходит
	// одно и то же "unauthorized access".
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")
)
