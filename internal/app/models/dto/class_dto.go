package dto

// ClassAction discriminates the admin mutation applied to a class
type ClassAction string

const (
	ClassActionApprove  ClassAction = "approve"
	ClassActionDeny     ClassAction = "deny"
	ClassActionFeedback ClassAction = "feedback"
)

// CreateClassRequest is the body of POST /classes (instructor submission).
// Status always starts as PENDING regardless of the request.
type CreateClassRequest struct {
	Name            string  `json:"name" binding:"required" example:"French for Beginners"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	InstructorName  string  `json:"instructorName" binding:"required" example:"Jane Doe"`
	InstructorEmail string  `json:"instructorEmail" binding:"required,email" example:"jane@lingora.app"`
	AvailableSeats  int     `json:"availableSeats" example:"25"`
	Price           float64 `json:"price" example:"120.5"`
}

// ClassActionRequest is the body of PATCH /classes/:id. Approve and deny
// overwrite any prior status; feedback leaves status untouched. Any other
// action value is a validation error and causes no mutation.
type ClassActionRequest struct {
	Action   ClassAction `json:"action" binding:"required" example:"approve"`
	Feedback string      `json:"feedback,omitempty" example:"Please add a syllabus."`
}
