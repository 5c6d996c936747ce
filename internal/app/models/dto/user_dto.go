package dto

// CreateUserRequest is the body of POST /users. Creation is idempotent by
// email: posting an existing email returns an "already exist" message.
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email" example:"student@lingora.app"`
	Name     string  `json:"name" binding:"required" example:"Jane Doe"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// AdminCheckResponse answers "is this email an admin"
type AdminCheckResponse struct {
	Admin bool `json:"admin" example:"false"`
}

// InstructorCheckResponse answers "is this email an instructor"
type InstructorCheckResponse struct {
	Instructor bool `json:"instructor" example:"false"`
}
