package parcel

import "time"

type ParcelDB struct {
	ID             int64
	SenderEmail    string
	Name           string
	Cost           float64
	PaymentStatus  string
	DeliveryStatus string
	TrackingID     *string
	RiderID        *int64
	RiderName      *string
	RiderEmail     *string
	CreatedAt      time.Time
}

type ParcelModifyDB struct {
	ID             *int64
	SenderEmail    *string
	Name           *string
	Cost           *float64
	PaymentStatus  *string
	DeliveryStatus *string
	TrackingID     *string
	RiderID        *int64
	RiderName      *string
	RiderEmail     *string
	CreatedAt      *time.Time
}
