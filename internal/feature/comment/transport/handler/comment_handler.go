// Package handler provides the HTTP handlers for the comment feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stocktrack/internal/feature/comment/domain/entity"
	"stocktrack/internal/feature/comment/transport/http/dto"
	"stocktrack/internal/feature/comment/usecase"
	jwtmw "stocktrack/internal/platform/jwt"
)

// CommentUsecase defines the usecase for comment operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CommentUsecase interface {
	List(ctx context.Context) ([]entity.Comment, error)
	Get(ctx context.Context, id uint) (*entity.Comment, error)
	Create(ctx context.Context, stockID uint, title, content string, authorID *uint) (*entity.Comment, error)
	Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id uint) (*entity.Comment, error)
}

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	comments CommentUsecase
}

// NewCommentHandler creates a new CommentHandler with the given usecase.
func NewCommentHandler(comments CommentUsecase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List handles GET /api/comment and returns every comment with its author resolved.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		slog.Error("comment list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	out := make([]dto.CommentResp, 0, len(comments))
	for _, cm := range comments {
		out = append(out, dto.NewCommentResp(cm))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/comment/:id.
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	comment, err := h.comments.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		slog.Error("comment get failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get comment"})
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentResp(*comment))
}

// Create handles POST /api/comment/:stockId. The route requires a bearer
// token; the authenticated user becomes the comment's author. A missing
// stock is a client error, reported before anything is written.
func (h *CommentHandler) Create(c *gin.Context) {
	stockID, ok := parseID(c, "stockId")
	if !ok {
		return
	}

	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var authorID *uint
	if v, exists := c.Get(jwtmw.ContextUserID); exists {
		if id, ok := v.(uint); ok {
			authorID = &id
		}
	}

	comment, err := h.comments.Create(c.Request.Context(), stockID, req.Title, req.Content, authorID)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock does not exist"})
			return
		}
		slog.Error("comment create failed", "error", err, "stock_id", stockID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewCommentResp(*comment))
}

// Update handles PUT /api/comment/:id. Only title and content change.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		slog.Error("comment update failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update comment"})
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentResp(*comment))
}

// Delete handles DELETE /api/comment/:id.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.comments.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		slog.Error("comment delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads a positive integer path parameter, answering 400 on bad input.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
