package checkout

import "errors"

var (
	// ErrProvider — любой сбой провайдера оплат: таймаут, 5xx,
	// нечитаемый ответ. Пробрасывается без ретраев.
	ErrProvider        = errors.New("checkout provider unavailable")
	ErrSessionNotFound = errors.New("checkout session not found")
)
