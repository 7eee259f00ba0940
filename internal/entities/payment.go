package entities

import "time"

type Payment struct {
	ID            string
	ParcelID      int64
	CustomerEmail string
	Amount        float64
	Currency      string
	TransactionID string
	TrackingID    string
	PaymentStatus PaymentStatusType
	PaidAt        time.Time
}

// PaymentOutcome описывает результат сверки checkout-сессии.
// AlreadyExists означает что транзакция уже была записана ранее.
type PaymentOutcome struct {
	Success       bool
	AlreadyExists bool
	TrackingID    string
	TransactionID string
}

type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	TransactionID string
	AmountMinor   int64
	Currency      string
	CustomerEmail string
	ParcelID      int64
	ParcelName    string
}

const CheckoutSessionPaid = "paid"

type CheckoutItem struct {
	ParcelID    int64
	ParcelName  string
	SenderEmail string
	AmountMinor int64
}
