// Package dto defines data transfer objects for the comment feature's HTTP transport layer.
package dto

import (
	"time"

	"stocktrack/internal/feature/comment/domain/entity"
)

// CreateCommentReq represents the request body for creating a comment.
type CreateCommentReq struct {
	Title   string `json:"title" binding:"required,min=5,max=280"`
	Content string `json:"content" binding:"required,min=5,max=280"`
}

// UpdateCommentReq represents the request body for updating a comment.
// Only title and content are mutable.
type UpdateCommentReq struct {
	Title   string `json:"title" binding:"required,min=5,max=280"`
	Content string `json:"content" binding:"required,min=5,max=280"`
}

// CommentResp is the projection of a comment exposed to callers.
type CommentResp struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
	CreatedBy string    `json:"createdBy"`
	StockID   *uint     `json:"stockId"`
}

// NewCommentResp maps a comment entity to its response projection,
// resolving the author's username when one is linked.
func NewCommentResp(c entity.Comment) CommentResp {
	createdBy := ""
	if c.User != nil {
		createdBy = c.User.Username
	}
	return CommentResp{
		ID:        c.ID,
		Title:     c.Title,
		Content:   c.Content,
		CreatedOn: c.CreatedOn,
		CreatedBy: createdBy,
		StockID:   c.StockID,
	}
}
