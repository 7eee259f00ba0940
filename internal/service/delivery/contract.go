//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"service/internal/entities"
)

type ParcelService interface {
	GetParcel(ctx context.Context, id int64) (*entities.Parcel, error)
}

type ParcelTransitions interface {
	MarkInTransit(ctx context.Context, parcelID int64) error
	CompleteDelivery(ctx context.Context, parcelID int64) error
	CancelDelivery(ctx context.Context, parcelID int64) error
}

type (
	ExecuteFn      func(ctx context.Context, parcelID int64) error
	HandlerFactory interface {
		GetHandler(status entities.DeliveryStatusType) (ExecuteFn, error)
	}
)
