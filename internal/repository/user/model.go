package user

import "time"

type UserDB struct {
	ID          int64
	Email       string
	DisplayName string
	Role        string
	CreatedAt   time.Time
	LastLoginAt time.Time
}
