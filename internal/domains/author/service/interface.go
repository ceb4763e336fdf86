package service

import (
	"context"

	"github.com/google/uuid"

	"multimedia-api/internal/domains/author/model"
)

// ServiceInterface defines business logic operations for Author domain
type ServiceInterface interface {
	// List returns all authors sorted by nome
	List(ctx context.Context) ([]model.Author, error)

	// GetByID errors: model.ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Create trims and validates before persisting
	// Errors: apperr.ErrValidation
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)

	// Update merges present fields and re-validates the result
	// Errors: model.ErrAuthorNotFound, apperr.ErrValidation
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete never cascades to media items
	// Errors: model.ErrAuthorNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
