package domain

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UserIDLength is the length of the public opaque user identifier.
const UserIDLength = 12

// User is the credential-store record. PasswordHash and the reset token
// fields must never leave the server; handlers return PublicUser instead.
type User struct {
	ID                string // internal record id (ULID)
	UserID            string // public opaque id (nanoid), stable across the account's life
	Name              string
	Email             string
	Phone             string
	PasswordHash      string // argon2id encoded
	Avatar            string
	ResetTokenHash    string     // fingerprint of the active password-reset token, if any
	ResetTokenExpires *time.Time // nullable
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PublicUser is the projection safe to return to clients.
type PublicUser struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserID generates the public opaque user identifier. Distinct from the
// internal primary key so the database key never leaks into tokens or URLs.
func NewUserID() string {
	return gonanoid.Must(UserIDLength)
}
