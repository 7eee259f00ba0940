package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, sender_email, name, cost, payment_status, delivery_status,
	tracking_id, rider_id, rider_name, rider_email, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (int64, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)
	query := `INSERT INTO parcels (sender_email, name, cost, payment_status, delivery_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.SenderEmail,
		parcelModifyModel.Name,
		parcelModifyModel.Cost,
		parcelModifyModel.PaymentStatus,
		parcelModifyModel.DeliveryStatus,
		parcelModifyModel.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelModel ParcelDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&parcelModel.ID,
			&parcelModel.SenderEmail,
			&parcelModel.Name,
			&parcelModel.Cost,
			&parcelModel.PaymentStatus,
			&parcelModel.DeliveryStatus,
			&parcelModel.TrackingID,
			&parcelModel.RiderID,
			&parcelModel.RiderName,
			&parcelModel.RiderEmail,
			&parcelModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	builder := qb.
		Select("id", "sender_email", "name", "cost", "payment_status", "delivery_status",
			"tracking_id", "rider_id", "rider_name", "rider_email", "created_at").
		From("parcels")

	// опциональные фильтры
	if filter.SenderEmail != nil {
		builder = builder.Where(sq.Eq{"sender_email": *filter.SenderEmail})
	}
	if filter.DeliveryStatus != nil {
		builder = builder.Where(sq.Eq{"delivery_status": filter.DeliveryStatus.String()})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		err := rows.Scan(
			&parcelModel.ID,
			&parcelModel.SenderEmail,
			&parcelModel.Name,
			&parcelModel.Cost,
			&parcelModel.PaymentStatus,
			&parcelModel.DeliveryStatus,
			&parcelModel.TrackingID,
			&parcelModel.RiderID,
			&parcelModel.RiderName,
			&parcelModel.RiderEmail,
			&parcelModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	// опциональные поля
	if parcelModifyModel.SenderEmail != nil {
		builder = builder.Set("sender_email", parcelModifyModel.SenderEmail)
	}
	if parcelModifyModel.Name != nil {
		builder = builder.Set("name", parcelModifyModel.Name)
	}
	if parcelModifyModel.Cost != nil {
		builder = builder.Set("cost", parcelModifyModel.Cost)
	}
	if parcelModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", parcelModifyModel.PaymentStatus)
	}
	if parcelModifyModel.DeliveryStatus != nil {
		builder = builder.Set("delivery_status", parcelModifyModel.DeliveryStatus)
	}
	if parcelModifyModel.TrackingID != nil {
		// tracking_id выдается ровно один раз на переходе unpaid -> paid
		builder = builder.Set("tracking_id", parcelModifyModel.TrackingID).
			Where(sq.Eq{"tracking_id": nil})
	}
	if parcelModifyModel.RiderID != nil {
		builder = builder.Set("rider_id", parcelModifyModel.RiderID)
	}
	if parcelModifyModel.RiderName != nil {
		builder = builder.Set("rider_name", parcelModifyModel.RiderName)
	}
	if parcelModifyModel.RiderEmail != nil {
		builder = builder.Set("rider_email", parcelModifyModel.RiderEmail)
	}

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	var parcelModel ParcelDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&parcelModel.ID,
			&parcelModel.SenderEmail,
			&parcelModel.Name,
			&parcelModel.Cost,
			&parcelModel.PaymentStatus,
			&parcelModel.DeliveryStatus,
			&parcelModel.TrackingID,
			&parcelModel.RiderID,
			&parcelModel.RiderName,
			&parcelModel.RiderEmail,
			&parcelModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrConflict
		}

		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM parcels WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return parcel.ErrParcelNotFound
	}

	return nil
}

// UnassignRider снимает райдера с посылки: все три поля rider_*
// сбрасываются вместе, статус доставки выставляется в status.
func (r *Repository) UnassignRider(ctx context.Context, id int64, status entities.DeliveryStatusType) error {
	query := `UPDATE parcels
		SET rider_id = NULL, rider_name = NULL, rider_email = NULL, delivery_status = $1
		WHERE id = $2`

	result, err := r.querier.Exec(ctx, query, status.String(), id)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository unassign error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parcel.ErrParcelNotFound
	}

	return nil
}

// DeleteAbandonedBefore удаляет брошенные посылки: неоплаченные, без
// назначенного райдера, созданные до cutoff.
func (r *Repository) DeleteAbandonedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM parcels
		WHERE payment_status = 'unpaid'
		AND rider_id IS NULL
		AND created_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository cleanup error: %w", err)
	}

	return result.RowsAffected(), nil
}
