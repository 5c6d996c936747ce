package models

import (
	"time"
)

// Payment defines a completed transaction record. Rows are immutable after
// insertion; the referenced cart items are removed as part of settlement.
type Payment struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	StudentEmail  string    `json:"studentEmail" db:"student_email" example:"student@lingora.app"`
	Amount        float64   `json:"amount" db:"amount" example:"241.0"`
	TransactionID string    `json:"transactionId" db:"transaction_id" example:"pi_3NQ..."`
	CartItemIDs   []int64   `json:"cartItemIds" db:"cart_item_ids"`
	ClassNames    []string  `json:"classNames" db:"class_names"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
