package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/internal/entities"
	"service/internal/service/rider"
)

type Parcel struct {
	repository      Repository
	riderRepository RiderRepository
	txManager       TxManager
	location        *time.Location
}

func New(
	repository Repository,
	riderRepository RiderRepository,
	txManager TxManager,
	location *time.Location,
) *Parcel {
	return &Parcel{
		repository:      repository,
		riderRepository: riderRepository,
		txManager:       txManager,
		location:        location,
	}
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (int64, error) {
	if parcelModify.SenderEmail == nil ||
		parcelModify.Name == nil ||
		parcelModify.Cost == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidEmail(*parcelModify.SenderEmail) {
		return 0, ErrInvalidEmail
	}
	if !isValidName(*parcelModify.Name) {
		return 0, ErrMissingRequiredFields
	}
	if !isValidCost(*parcelModify.Cost) {
		return 0, ErrInvalidCost
	}

	// штампуем сервером, клиентские значения игнорируем
	paymentStatus := entities.DefaultPaymentStatus
	deliveryStatus := entities.DefaultDeliveryStatus
	createdAt := time.Now().In(s.location)

	parcelModify.PaymentStatus = &paymentStatus
	parcelModify.DeliveryStatus = &deliveryStatus
	parcelModify.CreatedAt = &createdAt
	parcelModify.TrackingID = nil
	parcelModify.RiderID = nil
	parcelModify.RiderName = nil
	parcelModify.RiderEmail = nil

	id, err := s.repository.Create(ctx, parcelModify)
	if err != nil {
		return 0, fmt.Errorf("create parcel: %w", err)
	}

	return id, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	if !isValidParcelID(id) {
		return nil, ErrInvalidParcelID
	}

	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}

	return parcel, nil
}

func (s *Parcel) GetParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	if filter.DeliveryStatus != nil && !isValidDeliveryStatus(filter.DeliveryStatus.String()) {
		return nil, ErrInvalidStatus
	}

	parcels, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcels: %w", err)
	}

	return parcels, nil
}

// DeleteParcel удаляет посылку только пока она не оплачена и райдер не
// назначен.
func (s *Parcel) DeleteParcel(ctx context.Context, id int64) error {
	if !isValidParcelID(id) {
		return ErrInvalidParcelID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if parcel.PaymentStatus == entities.PaymentPaid || parcel.RiderID != 0 {
			return ErrParcelNotDeletable
		}

		err = s.repository.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete parcel: %w", err)
		}
		return nil
	})

	return err
}

// AssignRider переводит посылку pending-pickup -> driver_assigned и в той
// же транзакции занимает райдера (available -> in_delivery). Три поля
// rider_* на посылке устанавливаются только вместе. Частичный успех
// наружу не отдается: любой сбой откатывает оба обновления.
func (s *Parcel) AssignRider(ctx context.Context, parcelID int64, assignment entities.RiderAssignment) (*entities.AssignmentResult, error) {
	if !isValidParcelID(parcelID) {
		return nil, ErrInvalidParcelID
	}
	if assignment.RiderID <= 0 ||
		!isValidName(assignment.RiderName) ||
		!isValidEmail(assignment.RiderEmail) {
		return nil, ErrMissingRequiredFields
	}

	assignmentResult := entities.AssignmentResult{}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if parcel.PaymentStatus != entities.PaymentPaid ||
			parcel.DeliveryStatus != entities.DeliveryPendingPickup {
			return ErrParcelNotAssignable
		}

		newStatus := entities.DeliveryDriverAssigned
		parcelModify := entities.ParcelModify{
			ID:             &parcelID,
			DeliveryStatus: &newStatus,
			RiderID:        &assignment.RiderID,
			RiderName:      &assignment.RiderName,
			RiderEmail:     &assignment.RiderEmail,
		}

		updatedParcel, err := s.repository.Update(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}

		updatedRider, err := s.riderRepository.UpdateWorkStatusIf(
			ctx,
			assignment.RiderID,
			entities.RiderAvailable,
			entities.RiderInDelivery,
		)
		if err != nil {
			// репозиторий райдеров возвращает сентинел своего пакета
			if errors.Is(err, rider.ErrRiderNotAvailable) {
				return fmt.Errorf("update rider status: %w", ErrRiderNotAvailable)
			}
			return fmt.Errorf("update rider status: %w", err)
		}

		assignmentResult = entities.AssignmentResult{
			ParcelID:        updatedParcel.ID,
			TrackingID:      updatedParcel.TrackingID,
			DeliveryStatus:  updatedParcel.DeliveryStatus,
			RiderID:         updatedRider.ID,
			RiderWorkStatus: updatedRider.WorkStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignmentResult, nil
}

// MarkInTransit фиксирует выезд райдера: driver_assigned -> in_transit.
func (s *Parcel) MarkInTransit(ctx context.Context, parcelID int64) error {
	return s.advanceDelivery(ctx, parcelID, entities.DeliveryDriverAssigned, entities.DeliveryInTransit, false)
}

// CompleteDelivery завершает доставку: in_transit -> delivered, райдер
// освобождается (in_delivery -> available).
func (s *Parcel) CompleteDelivery(ctx context.Context, parcelID int64) error {
	return s.advanceDelivery(ctx, parcelID, entities.DeliveryInTransit, entities.DeliveryDelivered, true)
}

// CancelDelivery возвращает посылку в очередь на выдачу и освобождает
// райдера.
func (s *Parcel) CancelDelivery(ctx context.Context, parcelID int64) error {
	if !isValidParcelID(parcelID) {
		return ErrInvalidParcelID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if parcel.RiderID == 0 {
			return ErrParcelNotAssignable
		}

		err = s.repository.UnassignRider(ctx, parcelID, entities.DeliveryPendingPickup)
		if err != nil {
			return fmt.Errorf("unassign rider: %w", err)
		}

		_, err = s.riderRepository.UpdateWorkStatusIf(
			ctx,
			parcel.RiderID,
			entities.RiderInDelivery,
			entities.RiderAvailable,
		)
		if err != nil {
			return fmt.Errorf("free rider: %w", err)
		}
		return nil
	})

	return err
}

// CleanupAbandonedParcels удаляет неоплаченные посылки старше ttl.
func (s *Parcel) CleanupAbandonedParcels(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().In(s.location).Add(-ttl)

	rowsAffected, err := s.repository.DeleteAbandonedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup abandoned parcels: %w", err)
	}

	return rowsAffected, nil
}

func (s *Parcel) advanceDelivery(
	ctx context.Context,
	parcelID int64,
	from, to entities.DeliveryStatusType,
	freeRider bool,
) error {
	if !isValidParcelID(parcelID) {
		return ErrInvalidParcelID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		parcel, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if parcel.DeliveryStatus != from {
			return ErrParcelNotAssignable
		}

		parcelModify := entities.ParcelModify{
			ID:             &parcelID,
			DeliveryStatus: &to,
		}

		_, err = s.repository.Update(ctx, parcelModify)
		if err != nil {
			return fmt.Errorf("update parcel: %w", err)
		}

		if freeRider && parcel.RiderID != 0 {
			_, err = s.riderRepository.UpdateWorkStatusIf(
				ctx,
				parcel.RiderID,
				entities.RiderInDelivery,
				entities.RiderAvailable,
			)
			if err != nil {
				return fmt.Errorf("free rider: %w", err)
			}
		}
		return nil
	})

	return err
}
