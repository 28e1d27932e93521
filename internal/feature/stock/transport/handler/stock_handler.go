// Package handler provides the HTTP handlers for the stock feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stocktrack/internal/feature/stock/domain/entity"
	"stocktrack/internal/feature/stock/transport/http/dto"
	"stocktrack/internal/feature/stock/usecase"
)

// StockUsecase defines the usecase for stock operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type StockUsecase interface {
	List(ctx context.Context, q usecase.StockQuery) ([]entity.Stock, error)
	Get(ctx context.Context, id uint) (*entity.Stock, error)
	Create(ctx context.Context, stock *entity.Stock) error
	Update(ctx context.Context, id uint, upd usecase.StockUpdate) (*entity.Stock, error)
	Delete(ctx context.Context, id uint) (*entity.Stock, error)
	DeleteAll(ctx context.Context) error
}

// StockHandler handles HTTP requests for stock operations.
type StockHandler struct {
	stocks StockUsecase
}

// NewStockHandler creates a new StockHandler with the given usecase.
func NewStockHandler(stocks StockUsecase) *StockHandler {
	return &StockHandler{stocks: stocks}
}

// List handles GET /api/stock: filtered, sorted, paginated listing.
// Unusable page parameters are rejected with 400 before the store is queried.
func (h *StockHandler) List(c *gin.Context) {
	var params dto.StockQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stocks, err := h.stocks.List(c.Request.Context(), params.Query())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("stock list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list stocks"})
		return
	}

	out := make([]dto.StockResp, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.NewStockResp(s))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/stock/:id. A missing id is a normal 404, not a server error.
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	stock, err := h.stocks.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			return
		}
		slog.Error("stock get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stock"})
		return
	}
	c.JSON(http.StatusOK, dto.NewStockResp(*stock))
}

// Create handles POST /api/stock and echoes the stored record with its fresh id.
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stock := req.Entity()
	if err := h.stocks.Create(c.Request.Context(), &stock); err != nil {
		slog.Error("stock create failed", "error", err, "symbol", req.Symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create stock"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewStockResp(stock))
}

// Update handles PUT /api/stock/:id, overwriting exactly the mutable fields.
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stock, err := h.stocks.Update(c.Request.Context(), id, req.Update())
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			return
		}
		slog.Error("stock update failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update stock"})
		return
	}
	c.JSON(http.StatusOK, dto.NewStockResp(*stock))
}

// Delete handles DELETE /api/stock/:id.
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.stocks.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
			return
		}
		slog.Error("stock delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete stock"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/stock, removing every stock.
// Success is reported only when the removal commits.
func (h *StockHandler) DeleteAll(c *gin.Context) {
	if err := h.stocks.DeleteAll(c.Request.Context()); err != nil {
		slog.Error("stock delete all failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete records."})
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter, answering 400 on bad input.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
