//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type middlewareLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*entities.Identity, error)
}
