package rider

import "time"

type RiderDB struct {
	ID                int64
	Name              string
	Email             string
	District          string
	ApplicationStatus string
	WorkStatus        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RiderModifyDB struct {
	ID                *int64
	Name              *string
	Email             *string
	District          *string
	ApplicationStatus *string
	WorkStatus        *string
}
