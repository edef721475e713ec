package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Currently used for auth only; account management lives in
// the hotel's staff directory, not here.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	cafeteriaID  *uuid.UUID
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an account. cafeteriaID is set only for terminal accounts,
// binding the device login to the cafeteria it redeems for.
func NewUser(email Email, passwordHash string, role Role, cafeteriaID *uuid.UUID) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		cafeteriaID:  cafeteriaID,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	cafeteriaID *uuid.UUID,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		cafeteriaID:  cafeteriaID,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() Email            { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) CafeteriaID() *uuid.UUID { return u.cafeteriaID }
func (u *User) LastLogin() *time.Time   { return u.lastLogin }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
