//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	List(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error)
	Update(ctx context.Context, riderModifyEntity entities.RiderModify) (*entities.Rider, error)
}

type UserRepository interface {
	UpdateRoleByEmail(ctx context.Context, email string, role entities.RoleType) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
