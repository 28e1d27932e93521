// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/account/register endpoint.
// It uses Gin's binding tags for validation (required fields, email format,
// minimum password length).
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
