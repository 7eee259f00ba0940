package entities

import "time"

type User struct {
	ID          int64
	Email       string
	DisplayName string
	Role        RoleType
	CreatedAt   time.Time
	LastLoginAt time.Time
}

type RoleType string

const (
	RoleUser  RoleType = "user"
	RoleAdmin RoleType = "admin"
	RoleRider RoleType = "rider"
)

const DefaultRole = RoleUser

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleRider:
		return true
	}
	return false
}

// Operation перечисляет привилегированные операции сервиса.
type Operation string

const (
	OpManageRiders Operation = "manage_riders"
	OpManageRoles  Operation = "manage_roles"
	OpAssignRider  Operation = "assign_rider"
)

// Can — единая точка принятия решений по ролям вместо разбросанных
// сравнений строк по эндпоинтам.
func (r RoleType) Can(op Operation) bool {
	switch op {
	case OpManageRiders, OpManageRoles, OpAssignRider:
		return r == RoleAdmin
	}
	return false
}

type UserModify struct {
	ID          *int64
	Email       *string
	DisplayName *string
	Role        *RoleType
}

// Identity — подтверждённая личность вызывающего, полученная от
// внешнего провайдера токенов.
type Identity struct {
	Email  string
	Claims map[string]any
}
