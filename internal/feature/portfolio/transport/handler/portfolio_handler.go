// Package handler provides the HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stocktrack/internal/feature/portfolio/domain/entity"
	"stocktrack/internal/feature/portfolio/usecase"
	stockentity "stocktrack/internal/feature/stock/domain/entity"
	stockdto "stocktrack/internal/feature/stock/transport/http/dto"
	jwtmw "stocktrack/internal/platform/jwt"
)

// PortfolioUsecase defines the usecase for portfolio operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type PortfolioUsecase interface {
	ListHoldings(ctx context.Context, userID uint) ([]stockentity.Stock, error)
	AddHolding(ctx context.Context, userID uint, symbol string) (*entity.Holding, error)
	RemoveHolding(ctx context.Context, userID uint, symbol string) error
}

// PortfolioHandler handles HTTP requests for portfolio operations.
// All portfolio routes require a bearer token; the user comes from the
// claims the auth middleware put into the request context.
type PortfolioHandler struct {
	portfolio PortfolioUsecase
}

// NewPortfolioHandler creates a new PortfolioHandler with the given usecase.
func NewPortfolioHandler(portfolio PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// List handles GET /api/portfolio: the authenticated user's holdings,
// projected to full stock records.
func (h *PortfolioHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stocks, err := h.portfolio.ListHoldings(c.Request.Context(), userID)
	if err != nil {
		slog.Error("portfolio list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list portfolio"})
		return
	}
	out := make([]stockdto.StockResp, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, stockdto.NewStockResp(s))
	}
	c.JSON(http.StatusOK, out)
}

// Add handles POST /api/portfolio?symbol=XYZ.
func (h *PortfolioHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	if _, err := h.portfolio.AddHolding(c.Request.Context(), userID, symbol); err != nil {
		switch {
		case errors.Is(err, usecase.ErrStockNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		case errors.Is(err, usecase.ErrAlreadyHeld):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock already in portfolio"})
		default:
			slog.Error("portfolio add failed", "error", err, "user_id", userID, "symbol", symbol)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create"})
		}
		return
	}

	slog.Info("portfolio holding added", "user_id", userID, "symbol", symbol)
	c.Status(http.StatusCreated)
}

// Remove handles DELETE /api/portfolio?symbol=XYZ.
func (h *PortfolioHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	if err := h.portfolio.RemoveHolding(c.Request.Context(), userID, symbol); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotHeld):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock not in portfolio"})
		default:
			slog.Error("portfolio remove failed", "error", err, "user_id", userID, "symbol", symbol)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete"})
		}
		return
	}

	slog.Info("portfolio holding removed", "user_id", userID, "symbol", symbol)
	c.Status(http.StatusOK)
}

// currentUserID reads the authenticated user's id from the context set by
// the auth middleware, answering 401 when it is absent.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return 0, false
	}
	return id, true
}
