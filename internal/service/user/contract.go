//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, email, displayName string, role entities.RoleType) (*entities.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Search(ctx context.Context, query string, limit int) ([]entities.User, error)
	UpdateRoleByID(ctx context.Context, id int64, role entities.RoleType) (*entities.User, error)
}
