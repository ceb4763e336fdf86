package repository

import (
	"context"

	"github.com/google/uuid"

	"multimedia-api/internal/domains/author/model"
)

// Repository defines the interface for Author data access operations
// Implementations: Postgres, in-memory store, Redis read-through decorator
type Repository interface {
	// List returns every author ordered by nome ascending
	List(ctx context.Context) ([]model.Author, error)

	// GetByID returns model.ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Create inserts a with the ID already set; timestamps are assigned by the store
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// Update overwrites every mutable field of the stored author
	// Returns model.ErrAuthorNotFound if not exists
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes author by ID. Media items referencing it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
