//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, paymentEntity entities.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error)
	ListByEmail(ctx context.Context, customerEmail string) ([]entities.Payment, error)
}

type ParcelRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
}

type CheckoutGateway interface {
	CreateSession(ctx context.Context, item entities.CheckoutItem) (*entities.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error)
}

type TrackingIDFactory interface {
	Generate() string
}
