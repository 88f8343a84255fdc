package models

import (
	"time"
)

// User represents a durable account in the HR platform.
type User struct {
	ID           string    `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	DateOfBirth  string    `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Email        string    `json:"email" db:"email"`
	Mobile       string    `json:"mobile" db:"mobile"`
	AvatarURL    string    `json:"avatar_url,omitempty" db:"avatar_url"`
	PasswordHash string    `json:"-" db:"password_hash"`
	RoleID       string    `json:"role_id,omitempty" db:"role_id"`
	InstituteID  string    `json:"institute_id,omitempty" db:"institute_id"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
