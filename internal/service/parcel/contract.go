//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
	Delete(ctx context.Context, id int64) error
	UnassignRider(ctx context.Context, id int64, status entities.DeliveryStatusType) error
	DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type RiderRepository interface {
	UpdateWorkStatusIf(ctx context.Context, id int64, from, to entities.RiderWorkStatusType) (*entities.Rider, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
