package dto

// AddCartItemRequest is the body of POST /carts
type AddCartItemRequest struct {
	StudentEmail string  `json:"studentEmail" binding:"required,email" example:"student@lingora.app"`
	ClassID      int64   `json:"classId" binding:"required" example:"7"`
	ClassName    string  `json:"className" binding:"required" example:"French for Beginners"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	Price        float64 `json:"price" example:"120.5"`
}
