//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"service/internal/entities"
)

type IdentityGateway interface {
	VerifyToken(ctx context.Context, token string) (*entities.Identity, error)
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
