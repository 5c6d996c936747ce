package models

import (
	"time"
)

// ClassStatus defines the moderation status of a class offering
type ClassStatus string

const (
	// ClassPending is the status every submitted class starts in
	ClassPending  ClassStatus = "PENDING"
	ClassApproved ClassStatus = "APPROVED"
	ClassDenied   ClassStatus = "DENIED"
)

// Class defines a class offering submitted by an instructor.
// Status transitions are driven only by admin actions; feedback is set
// independently of status.
type Class struct {
	ID              int64       `json:"id" db:"id" example:"1"`
	Name            string      `json:"name" db:"name" example:"French for Beginners"`
	ImageURL        *string     `json:"imageUrl,omitempty" db:"image_url"`
	InstructorName  string      `json:"instructorName" db:"instructor_name" example:"Jane Doe"`
	InstructorEmail string      `json:"instructorEmail" db:"instructor_email" example:"jane@lingora.app"`
	AvailableSeats  int         `json:"availableSeats" db:"available_seats" example:"25"`
	Price           float64     `json:"price" db:"price" example:"120.5"`
	Status          ClassStatus `json:"status" db:"status" example:"PENDING"`
	Feedback        *string     `json:"feedback,omitempty" db:"feedback"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}
