package service

import (
	"context"

	"github.com/google/uuid"

	"multimedia-api/internal/domains/media/model"
)

// ServiceInterface defines business logic for one media kind
type ServiceInterface interface {
	Kind() model.Kind

	// List resolves autor with the summary projection
	List(ctx context.Context) ([]model.Item, error)

	// GetByID resolves autor with the detail projection (includes bio)
	// Errors: model.ErrItemNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error)

	// Create persists then re-reads so autor is resolved in the result
	// Errors: apperr.ErrValidation
	Create(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error)

	// Update merges present fields, re-validates, persists and re-reads
	// Errors: model.ErrItemNotFound, apperr.ErrValidation
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateItemRequest) (*model.Item, error)

	// Errors: model.ErrItemNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
