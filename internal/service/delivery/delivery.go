package delivery

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
)

// Service разбирает события delivery-status-changed: проверяет посылку
// и делегирует переход фабрике обработчиков статусов.
type Service struct {
	parcelService ParcelService
	statusFactory HandlerFactory
}

func New(parcelService ParcelService, statusFactory HandlerFactory) *Service {
	return &Service{
		parcelService: parcelService,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessDeliveryStatusChange(ctx context.Context, parcelID int64, status entities.DeliveryStatusType) (*entities.Parcel, error) {
	if parcelID <= 0 || status == "" {
		return nil, fmt.Errorf("%w: parcel id and status are required", ErrMissingRequiredFields)
	}

	parcel, err := s.parcelService.GetParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel %d: %w", parcelID, err)
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return parcel, nil
		}
		return parcel, err
	}

	if err := executeFn(ctx, parcel.ID); err != nil {
		return nil, err
	}

	return parcel, nil
}
