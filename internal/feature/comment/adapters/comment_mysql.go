// Package adapters provides the repository implementations for the comment feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stocktrack/internal/feature/comment/domain/entity"
	"stocktrack/internal/feature/comment/usecase"
)

// commentMySQL is the MySQL implementation of the CommentRepository interface.
// It uses GORM for database operations.
type commentMySQL struct {
	db *gorm.DB
}

// Compile-time check that commentMySQL implements CommentRepository.
var _ usecase.CommentRepository = (*commentMySQL)(nil)

// NewCommentMySQL creates a new commentMySQL instance with the given gorm.DB connection.
func NewCommentMySQL(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

// ListAll returns every comment ordered by id, with authors eagerly loaded.
func (r *commentMySQL) ListAll(ctx context.Context) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID retrieves a comment by id with its author.
// It returns usecase.ErrCommentNotFound when the id is absent.
func (r *commentMySQL) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create persists a new comment and assigns its id.
func (r *commentMySQL) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update overwrites exactly the title and content of an existing comment.
// It returns usecase.ErrCommentNotFound when the id is absent.
func (r *commentMySQL) Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}

	c.Title = title
	c.Content = content

	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, c.ID)
}

// Delete removes the comment with the given id and returns the removed record.
// It returns usecase.ErrCommentNotFound when the id is absent.
func (r *commentMySQL) Delete(ctx context.Context, id uint) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
