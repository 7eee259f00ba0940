package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
	"service/internal/service/parcel"
)

type Payment struct {
	repository       Repository
	parcelRepository ParcelRepository
	checkoutGateway  CheckoutGateway
	trackingFactory  TrackingIDFactory
}

func New(
	repository Repository,
	parcelRepository ParcelRepository,
	checkoutGateway CheckoutGateway,
	trackingFactory TrackingIDFactory,
) *Payment {
	return &Payment{
		repository:       repository,
		parcelRepository: parcelRepository,
		checkoutGateway:  checkoutGateway,
		trackingFactory:  trackingFactory,
	}
}

// CreateCheckoutSession создает сессию оплаты у провайдера и возвращает
// redirect URL. Идентификатор посылки едет в метаданных сессии, чтобы
// клиент не мог его подменить.
func (s *Payment) CreateCheckoutSession(ctx context.Context, parcelID int64) (string, error) {
	if parcelID <= 0 {
		return "", ErrInvalidParcelID
	}

	parcel, err := s.parcelRepository.GetByID(ctx, parcelID)
	if err != nil {
		return "", fmt.Errorf("get parcel: %w", err)
	}

	item := entities.CheckoutItem{
		ParcelID:    parcel.ID,
		ParcelName:  parcel.Name,
		SenderEmail: parcel.SenderEmail,
		// провайдер принимает минорные единицы, дробная часть отбрасывается
		AmountMinor: int64(math.Trunc(parcel.Cost * 100)),
	}

	session, err := s.checkoutGateway.CreateSession(ctx, item)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return session.URL, nil
}

// Reconcile подтверждает исход checkout-сессии и применяет его ровно один
// раз. Вызов безопасен для повторов и конкурентных гонок: контрольная
// точка — уникальный индекс леджера по transaction_id.
func (s *Payment) Reconcile(ctx context.Context, sessionID string) (*entities.PaymentOutcome, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSessionID
	}

	session, err := s.checkoutGateway.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}

	existing, err := s.repository.GetByTransactionID(ctx, session.TransactionID)
	if err != nil && !errors.Is(err, ErrPaymentNotFound) {
		return nil, fmt.Errorf("lookup payment ledger: %w", err)
	}
	if existing != nil {
		return &entities.PaymentOutcome{
			Success:       true,
			AlreadyExists: true,
			TrackingID:    existing.TrackingID,
			TransactionID: existing.TransactionID,
		}, nil
	}

	if session.PaymentStatus != entities.CheckoutSessionPaid {
		// отмененная или незавершенная сессия — определенный исход, не сбой
		return &entities.PaymentOutcome{Success: false}, nil
	}

	trackingID := s.trackingFactory.Generate()

	paymentStatus := entities.PaymentPaid
	deliveryStatus := entities.DeliveryPendingPickup
	parcelModify := entities.ParcelModify{
		ID:             &session.ParcelID,
		PaymentStatus:  &paymentStatus,
		DeliveryStatus: &deliveryStatus,
		TrackingID:     &trackingID,
	}

	_, err = s.parcelRepository.Update(ctx, parcelModify)
	if err != nil {
		if errors.Is(err, parcel.ErrParcelNotFound) {
			// tracking_id уже проставлен: конкурент обновил посылку, но мог
			// еще не дописать леджер. Если запись там — исход известен.
			winner, lookupErr := s.repository.GetByTransactionID(ctx, session.TransactionID)
			if lookupErr == nil {
				return &entities.PaymentOutcome{
					Success:       true,
					AlreadyExists: true,
					TrackingID:    winner.TrackingID,
					TransactionID: winner.TransactionID,
				}, nil
			}
			if !errors.Is(lookupErr, ErrPaymentNotFound) {
				return nil, fmt.Errorf("lookup winning payment: %w", lookupErr)
			}
		}
		return nil, fmt.Errorf("mark parcel paid: %w", err)
	}

	ledgerEntry := entities.Payment{
		ID:            uuid.NewString(),
		ParcelID:      session.ParcelID,
		CustomerEmail: session.CustomerEmail,
		Amount:        float64(session.AmountMinor) / 100,
		Currency:      session.Currency,
		TransactionID: session.TransactionID,
		TrackingID:    trackingID,
		PaymentStatus: entities.PaymentPaid,
		PaidAt:        time.Now().UTC(),
	}

	err = s.repository.Create(ctx, ledgerEntry)
	if err != nil {
		if errors.Is(err, ErrDuplicateTransaction) {
			// конкурентный дубль успел раньше — его запись и есть результат
			winner, lookupErr := s.repository.GetByTransactionID(ctx, session.TransactionID)
			if lookupErr != nil {
				return nil, fmt.Errorf("lookup winning payment: %w", lookupErr)
			}
			return &entities.PaymentOutcome{
				Success:       true,
				AlreadyExists: true,
				TrackingID:    winner.TrackingID,
				TransactionID: winner.TransactionID,
			}, nil
		}
		return nil, fmt.Errorf("insert payment ledger: %w", err)
	}

	return &entities.PaymentOutcome{
		Success:       true,
		TrackingID:    trackingID,
		TransactionID: session.TransactionID,
	}, nil
}

// ListPayments отдает леджер только самому владельцу email: несовпадение
// с аутентифицированным вызывающим отклоняется до обращения к хранилищу.
func (s *Payment) ListPayments(ctx context.Context, authenticatedEmail, requestedEmail string) ([]entities.Payment, error) {
	if strings.TrimSpace(requestedEmail) == "" {
		return nil, ErrInvalidEmail
	}
	if !strings.EqualFold(authenticatedEmail, requestedEmail) {
		return nil, ErrEmailMismatch
	}

	payments, err := s.repository.ListByEmail(ctx, requestedEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, nil
}
