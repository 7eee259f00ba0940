package rider

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Rider struct {
	repository     Repository
	userRepository UserRepository
	txManager      TxManager
}

func New(repository Repository, userRepository UserRepository, txManager TxManager) *Rider {
	return &Rider{
		repository:     repository,
		userRepository: userRepository,
		txManager:      txManager,
	}
}

// CreateRider принимает заявку. Статусы всегда принудительные:
// application_status=pending, work_status=unavailable — что бы ни
// прислал клиент.
func (s *Rider) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil || riderModify.Email == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrMissingRequiredFields
	}
	if !isValidEmail(*riderModify.Email) {
		return 0, ErrInvalidEmail
	}

	applicationStatus := entities.DefaultApplicationStatus
	workStatus := entities.DefaultWorkStatus
	riderModify.ApplicationStatus = &applicationStatus
	riderModify.WorkStatus = &workStatus

	id, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}

	return id, nil
}

func (s *Rider) GetRiders(ctx context.Context, filter entities.RiderFilter) ([]entities.Rider, error) {
	riders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get riders: %w", err)
	}

	return riders, nil
}

// UpdateApplicationStatus меняет статус заявки. Ровно при литерале
// "Approved" дополнительно, в одной транзакции: райдер становится
// available, а роль пользователя с тем же email поднимается до "rider".
// Любой другой статус трогает только райдера.
func (s *Rider) UpdateApplicationStatus(ctx context.Context, id int64, status entities.RiderApplicationStatusType) (*entities.Rider, error) {
	if id <= 0 {
		return nil, ErrInvalidRiderID
	}
	if !isValidApplicationStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	var updatedRider *entities.Rider

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		riderModify := entities.RiderModify{
			ID:                &id,
			ApplicationStatus: &status,
		}

		if status == entities.RiderApproved {
			workStatus := entities.RiderAvailable
			riderModify.WorkStatus = &workStatus
		}

		rider, err := s.repository.Update(ctx, riderModify)
		if err != nil {
			return fmt.Errorf("update rider: %w", err)
		}

		if status == entities.RiderApproved {
			_, err = s.userRepository.UpdateRoleByEmail(ctx, rider.Email, entities.RoleRider)
			if err != nil {
				return fmt.Errorf("elevate user role: %w", err)
			}
		}

		updatedRider = rider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updatedRider, nil
}
