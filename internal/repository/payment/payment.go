package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/payment"
)

const paymentColumns = `id, parcel_id, customer_email, amount, currency,
	transaction_id, tracking_id, payment_status, paid_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет запись леджера. Уникальный индекс по transaction_id —
// контрольная точка идемпотентности: повторная вставка той же транзакции
// возвращает ErrDuplicateTransaction, не являющийся сбоем.
func (r *Repository) Create(ctx context.Context, paymentEntity entities.Payment) error {
	paymentModel := FromDomain(&paymentEntity)
	query := `INSERT INTO payments (id, parcel_id, customer_email, amount, currency,
		transaction_id, tracking_id, payment_status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.querier.Exec(
		ctx,
		query,
		paymentModel.ID,
		paymentModel.ParcelID,
		paymentModel.CustomerEmail,
		paymentModel.Amount,
		paymentModel.Currency,
		paymentModel.TransactionID,
		paymentModel.TrackingID,
		paymentModel.PaymentStatus,
		paymentModel.PaidAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return payment.ErrDuplicateTransaction
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			// посылку удалили между созданием сессии и реконсиляцией
			return fmt.Errorf("parcel reference: %w", payment.ErrInvalidParcelID)
		}
		return fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByTransactionID(ctx context.Context, transactionID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE transaction_id = $1`

	var paymentModel PaymentDB
	err := r.querier.QueryRow(ctx, query, transactionID).
		Scan(
			&paymentModel.ID,
			&paymentModel.ParcelID,
			&paymentModel.CustomerEmail,
			&paymentModel.Amount,
			&paymentModel.Currency,
			&paymentModel.TransactionID,
			&paymentModel.TrackingID,
			&paymentModel.PaymentStatus,
			&paymentModel.PaidAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}

		return nil, fmt.Errorf("unexpected payment repository getbytransactionid error: %w", err)
	}

	return ToDomain(&paymentModel), nil
}

func (r *Repository) ListByEmail(ctx context.Context, customerEmail string) ([]entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE customer_email = $1
		ORDER BY paid_at DESC`

	rows, err := r.querier.Query(ctx, query, customerEmail)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository listbyemail error: %w", err)
	}
	defer rows.Close()

	paymentModels := make([]PaymentDB, 0, 8)
	for rows.Next() {
		var paymentModel PaymentDB
		err := rows.Scan(
			&paymentModel.ID,
			&paymentModel.ParcelID,
			&paymentModel.CustomerEmail,
			&paymentModel.Amount,
			&paymentModel.Currency,
			&paymentModel.TransactionID,
			&paymentModel.TrackingID,
			&paymentModel.PaymentStatus,
			&paymentModel.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository listbyemail error: %w", err)
		}
		paymentModels = append(paymentModels, paymentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository listbyemail error: %w", err)
	}

	return ToDomainList(paymentModels), nil
}
