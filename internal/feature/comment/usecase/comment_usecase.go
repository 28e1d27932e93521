// Package usecase implements the business logic for the comment feature.
package usecase

import (
	"context"
	"time"

	"stocktrack/internal/feature/comment/domain/entity"
)

// CommentRepository abstracts the persistence layer for comment entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CommentRepository interface {
	// ListAll returns every comment ordered by id, authors eagerly loaded.
	ListAll(ctx context.Context) ([]entity.Comment, error)

	// FindByID returns the comment with the given id, author eagerly loaded.
	// It returns ErrCommentNotFound when the id is absent.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// Create persists a new comment and assigns its id.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update overwrites the title and content of an existing comment.
	// It returns ErrCommentNotFound when the id is absent.
	Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error)

	// Delete removes the comment with the given id and returns the removed
	// record, or ErrCommentNotFound when the id is absent.
	Delete(ctx context.Context, id uint) (*entity.Comment, error)
}

// StockChecker answers whether a stock exists. It is the slice of the stock
// store the comment feature depends on, used to fail comment creation fast
// with a client error instead of a constraint violation.
type StockChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CommentUsecase provides CRUD logic for comments.
type CommentUsecase struct {
	repo   CommentRepository
	stocks StockChecker
}

// NewCommentUsecase creates a new CommentUsecase with the given dependencies.
func NewCommentUsecase(repo CommentRepository, stocks StockChecker) *CommentUsecase {
	return &CommentUsecase{repo: repo, stocks: stocks}
}

// List returns every comment with authors resolved.
func (u *CommentUsecase) List(ctx context.Context) ([]entity.Comment, error) {
	return u.repo.ListAll(ctx)
}

// Get returns a single comment by id.
func (u *CommentUsecase) Get(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.repo.FindByID(ctx, id)
}

// Create attaches a new comment to the stock with the given id, recording the
// author when one is present. The stock must exist; otherwise ErrStockNotFound
// is returned and nothing is written. The creation time is stamped here, at
// the moment of insertion.
func (u *CommentUsecase) Create(ctx context.Context, stockID uint, title, content string, authorID *uint) (*entity.Comment, error) {
	exists, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrStockNotFound
	}

	comment := &entity.Comment{
		Title:     title,
		Content:   content,
		CreatedOn: time.Now(),
		StockID:   &stockID,
		UserID:    authorID,
	}
	if err := u.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	// Reload so the response carries the resolved author.
	return u.repo.FindByID(ctx, comment.ID)
}

// Update changes the title and content of an existing comment.
// All other fields, including the creation time, are immutable.
func (u *CommentUsecase) Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error) {
	return u.repo.Update(ctx, id, title, content)
}

// Delete removes the comment with the given id and returns the removed record.
func (u *CommentUsecase) Delete(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.repo.Delete(ctx, id)
}
