package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID             uint64     `db:"id" json:"id"`
	FirstName      string     `db:"first_name" json:"firstName"`
	LastName       string     `db:"last_name" json:"lastName"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Phone          string     `db:"phone" json:"phone"`
	Company        string     `db:"company" json:"company,omitempty"`
	Country        string     `db:"country" json:"country"`
	BusinessType   string     `db:"business_type" json:"businessType"`
	Role           string     `db:"role" json:"role"`
	Active         bool       `db:"active" json:"active"`
	FailedAttempts int        `db:"failed_attempts" json:"-"`
	LockedUntil    *time.Time `db:"locked_until" json:"-"`
	LastLogin      *time.Time `db:"last_login" json:"lastLogin,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// IsLocked reports whether the account is currently locked out.
func (u *UserEntity) IsLocked() bool {
	return u.LockedUntil != nil && u.LockedUntil.After(time.Now())
}

// UserRef is the shape a user takes when embedded in another record
// (inquiry assignee, product creator).
type UserRef struct {
	ID        uint64 `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
	Role  string
	Query ListQuery
}

// RegisterRequest for user registration. Role is never accepted from the
// payload; every registration creates a customer.
type RegisterRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=2,max=50"`
	LastName     string `json:"lastName" validate:"required,min=2,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Phone        string `json:"phone" validate:"required,min=7,max=20"`
	Company      string `json:"company" validate:"omitempty,max=100"`
	Country      string `json:"country" validate:"required,min=2,max=50"`
	BusinessType string `json:"businessType" validate:"required,oneof=importer distributor retailer manufacturer other"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *UserEntity `json:"user"`
	Token string      `json:"token"`
}

// UpdateProfileRequest carries the self-service mutable profile fields.
// Only supplied fields are validated and written.
type UpdateProfileRequest struct {
	FirstName    *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName     *string `json:"lastName" validate:"omitempty,min=2,max=50"`
	Phone        *string `json:"phone" validate:"omitempty,min=7,max=20"`
	Company      *string `json:"company" validate:"omitempty,max=100"`
	Country      *string `json:"country" validate:"omitempty,min=2,max=50"`
	BusinessType *string `json:"businessType" validate:"omitempty,oneof=importer distributor retailer manufacturer other"`
}

// ChangePasswordRequest rotates the account credential.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// UserListResult is the repository-level page of users plus the filter total.
type UserListResult struct {
	Items []UserEntity
	Total int64
}
