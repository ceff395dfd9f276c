package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents an admin user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	FullName     string    `json:"full_name" db:"full_name"`   // Display name
	Email        string    `json:"email" db:"email"`           // Institutional email, unique
	AuthID       string    `json:"auth_id" db:"auth_id"`       // Identity provider user id
	PasswordHash string    `json:"-" db:"password_hash"`       // Local bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
