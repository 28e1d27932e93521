// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// NewUserResp is returned by both register and login: the user's public
// identity plus a freshly issued bearer token.
type NewUserResp struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
