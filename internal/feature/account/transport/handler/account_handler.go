// Package handler provides the HTTP handlers for the account feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocktrack/internal/feature/account/transport/http/dto"
	"stocktrack/internal/feature/account/usecase"
)

// AccountUsecase defines the usecase for account operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AccountUsecase interface {
	// Register creates a new user and returns its identity with a token.
	Register(ctx context.Context, username, email, password string) (*usecase.NewUser, error)
	// Login authenticates a user and returns its identity with a token.
	Login(ctx context.Context, username, password string) (*usecase.NewUser, error)
}

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	account AccountUsecase
}

// NewAccountHandler creates a new AccountHandler with the given usecase.
func NewAccountHandler(account AccountUsecase) *AccountHandler {
	return &AccountHandler{account: account}
}

// Register handles POST /api/account/register.
// - binds the request JSON to RegisterReq; validation errors return 400
// - user creation and role assignment failures both return 500, logged
//   separately so the two failure kinds stay distinguishable
// - on success returns 200 with the username, email and token
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newUser, err := h.account.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoleAssignmentFailed):
			slog.Error("register role assignment failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		default:
			slog.Error("register user creation failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	slog.Info("user registered", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserResp{
		UserName: newUser.Username,
		Email:    newUser.Email,
		Token:    newUser.Token,
	})
}

// Login handles POST /api/account/login.
// - binds the request JSON to LoginReq; validation errors return 400
// - an unknown username and a wrong password both return 401, with
//   differentiated messages
// - on success returns 200 with the username, email and token
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newUser, err := h.account.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrInvalidUsername):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username!"})
		case errors.Is(err, usecase.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewUserResp{
		UserName: newUser.Username,
		Email:    newUser.Email,
		Token:    newUser.Token,
	})
}
