package dto

import "time"

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a workshop user.
type UserResponse struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"full_name"`
	Username  string     `json:"username"`
	RoleID    int64      `json:"role_id"`
	RoleName  string     `json:"role_name"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	Active    bool       `json:"active"`
}

// LoginResponse returns the issued token alongside the signed-in user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest registers a new workshop user.
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   int64  `json:"role_id" binding:"required"`
}

// RoleResponse is one assignable role.
type RoleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
