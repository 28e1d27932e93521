// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// LoginReq represents the request body for the /api/account/login endpoint.
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
