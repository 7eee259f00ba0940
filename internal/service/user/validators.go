package user

import (
	"errors"
	"strings"
)

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
