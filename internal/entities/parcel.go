package entities

import (
	"time"
)

type Parcel struct {
	ID             int64
	SenderEmail    string
	Name           string
	Cost           float64
	PaymentStatus  PaymentStatusType
	DeliveryStatus DeliveryStatusType
	TrackingID     string
	RiderID        int64
	RiderName      string
	RiderEmail     string
	CreatedAt      time.Time
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "unpaid"
	PaymentPaid   PaymentStatusType = "paid"
)

const DefaultPaymentStatus = PaymentUnpaid

func (t PaymentStatusType) String() string {
	return string(t)
}

type DeliveryStatusType string

const (
	DeliveryCreated        DeliveryStatusType = "created"
	DeliveryPendingPickup  DeliveryStatusType = "pending-pickup"
	DeliveryDriverAssigned DeliveryStatusType = "driver_assigned"
	DeliveryInTransit      DeliveryStatusType = "in_transit"
	DeliveryDelivered      DeliveryStatusType = "delivered"
	DeliveryCancelled      DeliveryStatusType = "cancelled"
)

const DefaultDeliveryStatus = DeliveryCreated

func (t DeliveryStatusType) String() string {
	return string(t)
}

type ParcelModify struct {
	ID             *int64
	SenderEmail    *string
	Name           *string
	Cost           *float64
	PaymentStatus  *PaymentStatusType
	DeliveryStatus *DeliveryStatusType
	TrackingID     *string
	RiderID        *int64
	RiderName      *string
	RiderEmail     *string
	CreatedAt      *time.Time
}

type ParcelFilter struct {
	SenderEmail    *string
	DeliveryStatus *DeliveryStatusType
}

type RiderAssignment struct {
	RiderID    int64
	RiderName  string
	RiderEmail string
}

type AssignmentResult struct {
	ParcelID        int64
	TrackingID      string
	DeliveryStatus  DeliveryStatusType
	RiderID         int64
	RiderWorkStatus RiderWorkStatusType
}
