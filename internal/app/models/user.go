package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	// RoleNone is the default role for newly created users
	RoleNone       RoleType = "NONE"
	RoleAdmin      RoleType = "ADMIN"
	RoleInstructor RoleType = "INSTRUCTOR"
)

// User defines the user model based on the 'users' table.
// The email is the stable identity key every authorization decision uses.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"student@lingora.app"`
	Name      string    `json:"name" db:"name" example:"Jane Doe"`
	PhotoURL  *string   `json:"photoUrl,omitempty" db:"photo_url"`
	Role      RoleType  `json:"role" db:"role" example:"NONE"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
