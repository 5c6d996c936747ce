package dto

// TokenRequest carries the identity claims a token is issued for.
// The frontend calls this right after a successful social sign-in.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"student@lingora.app"`
	Name  string `json:"name" example:"Jane Doe"`
}

// TokenResponse carries the signed bearer token
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}
