package delivery_handle

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/internal/service/delivery"
)

type StatusHandlerFactory struct {
	parcelService delivery.ParcelTransitions
}

func NewStatusHandlerFactory(parcelService delivery.ParcelTransitions) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		parcelService: parcelService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.DeliveryStatusType) (delivery.ExecuteFn, error) {
	switch status {
	case entities.DeliveryInTransit:
		return f.inTransitHandler, nil
	case entities.DeliveryDelivered:
		return f.deliveredHandler, nil
	case entities.DeliveryCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", delivery.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) inTransitHandler(ctx context.Context, parcelID int64) error {
	err := f.parcelService.MarkInTransit(ctx, parcelID)
	if err != nil {
		return fmt.Errorf("mark parcel %d in transit: %w", parcelID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, parcelID int64) error {
	err := f.parcelService.CompleteDelivery(ctx, parcelID)
	if err != nil {
		return fmt.Errorf("complete delivery for parcel %d: %w", parcelID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, parcelID int64) error {
	err := f.parcelService.CancelDelivery(ctx, parcelID)
	if err != nil {
		return fmt.Errorf("cancel delivery for parcel %d: %w", parcelID, err)
	}
	return nil
}
