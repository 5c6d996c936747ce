package models

import (
	"time"
)

// CartItem defines a student's pending, unpaid class selection.
// Items are removed one by one (manual removal) or in bulk when a payment
// referencing them settles.
type CartItem struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	StudentEmail string    `json:"studentEmail" db:"student_email" example:"student@lingora.app"`
	ClassID      int64     `json:"classId" db:"class_id" example:"7"`
	ClassName    string    `json:"className" db:"class_name" example:"French for Beginners"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url"`
	Price        float64   `json:"price" db:"price" example:"120.5"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
