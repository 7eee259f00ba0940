// Package dto содержит типы HTTP-контракта сервиса.
package dto

import (
	"encoding/json"
	"time"
)

type Parcel struct {
	ID             int64     `json:"id"`
	SenderEmail    string    `json:"senderEmail"`
	Name           string    `json:"parcelName"`
	Cost           float64   `json:"cost"`
	PaymentStatus  string    `json:"paymentStatus"`
	DeliveryStatus string    `json:"deliveryStatus"`
	TrackingID     string    `json:"trackingId,omitempty"`
	RiderID        int64     `json:"riderId,omitempty"`
	RiderName      string    `json:"riderName,omitempty"`
	RiderEmail     string    `json:"riderEmail,omitempty"`
	CreatedAt      time.Time `json:"creationDate"`
}

// ParcelCreate принимает cost и числом и строкой: сервер приводит
// значение к numeric.
type ParcelCreate struct {
	SenderEmail string      `json:"senderEmail"`
	Name        string      `json:"parcelName"`
	Cost        json.Number `json:"cost"`
}

type ParcelCreateResponse struct {
	ID int64 `json:"insertedId"`
}

type AssignRiderRequest struct {
	RiderID    int64  `json:"riderId"`
	RiderName  string `json:"riderName"`
	RiderEmail string `json:"riderEmail"`
}

type AssignRiderResponse struct {
	ParcelID        int64  `json:"parcelId"`
	TrackingID      string `json:"trackingId,omitempty"`
	DeliveryStatus  string `json:"deliveryStatus"`
	RiderID         int64  `json:"riderId"`
	RiderWorkStatus string `json:"riderWorkStatus"`
}

type CheckoutSessionRequest struct {
	ParcelID int64 `json:"parcelId"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type PaymentOutcome struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	TrackingID    string `json:"trackingId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

type Payment struct {
	ID            string    `json:"id"`
	ParcelID      int64     `json:"parcelId"`
	CustomerEmail string    `json:"customerEmail"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transactionId"`
	TrackingID    string    `json:"trackingId"`
	PaymentStatus string    `json:"paymentStatus"`
	PaidAt        time.Time `json:"paidAt"`
}

type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

type UserCreate struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type UserCreateResponse struct {
	ID       int64  `json:"id"`
	Inserted bool   `json:"inserted"`
	Message  string `json:"message,omitempty"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type RoleUpdateRequest struct {
	Role string `json:"role"`
}

type Rider struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	District          string    `json:"district"`
	ApplicationStatus string    `json:"status"`
	WorkStatus        string    `json:"workStatus"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type RiderCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

type RiderCreateResponse struct {
	ID int64 `json:"insertedId"`
}

type RiderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// Error — фиксированные тела 401/403 и прочих отказов.
type Error struct {
	Message string `json:"message"`
}
