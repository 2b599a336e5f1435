package model

import "time"

// RoleAdmin is the role name allowed to manage users.
const RoleAdmin = "Administrador"

// Role groups users by what they are allowed to do.
type Role struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
}

// User is a workshop employee able to sign in.
type User struct {
	ID           int64
	FullName     string
	Username     string
	PasswordHash string
	RoleID       int64
	RoleName     string
	CreatedAt    time.Time
	LastLogin    *time.Time
	Active       bool
	CreatedByID  *int64
}
