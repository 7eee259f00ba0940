package entities

import "time"

type Rider struct {
	ID                int64
	Name              string
	Email             string
	District          string
	ApplicationStatus RiderApplicationStatusType
	WorkStatus        RiderWorkStatusType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RiderApplicationStatusType string

const (
	RiderPending RiderApplicationStatusType = "pending"
	// RiderApproved хранится с заглавной буквы, каскад роли завязан на точное
	// значение литерала.
	RiderApproved RiderApplicationStatusType = "Approved"
	RiderRejected RiderApplicationStatusType = "rejected"
)

const DefaultApplicationStatus = RiderPending

func (t RiderApplicationStatusType) String() string {
	return string(t)
}

type RiderWorkStatusType string

const (
	RiderUnavailable RiderWorkStatusType = "unavailable"
	RiderAvailable   RiderWorkStatusType = "available"
	RiderInDelivery  RiderWorkStatusType = "in_delivery"
)

const DefaultWorkStatus = RiderUnavailable

func (t RiderWorkStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID                *int64
	Name              *string
	Email             *string
	District          *string
	ApplicationStatus *RiderApplicationStatusType
	WorkStatus        *RiderWorkStatusType
}

type RiderFilter struct {
	ApplicationStatus *string
	District          *string
	WorkStatus        *string
}
