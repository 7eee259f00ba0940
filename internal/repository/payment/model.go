package payment

import "time"

type PaymentDB struct {
	ID            string
	ParcelID      int64
	CustomerEmail string
	Amount        float64
	Currency      string
	TransactionID string
	TrackingID    string
	PaymentStatus string
	PaidAt        time.Time
}
