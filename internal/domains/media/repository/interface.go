package repository

import (
	"context"

	"github.com/google/uuid"

	"multimedia-api/internal/domains/media/model"
)

// Repository lưu trữ một loại media (books, cds hoặc dvds).
// Mọi lệnh đọc đều resolve author tại thời điểm đọc; author đã bị xoá -> Autor = nil.
type Repository interface {
	Kind() model.Kind
	// List trả về toàn bộ item, sort theo titulo tăng dần
	List(ctx context.Context) ([]model.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	// Create ghi item, set CreatedAt/UpdatedAt
	Create(ctx context.Context, it *model.Item) error
	// Update ghi đè toàn bộ field, trả ErrItemNotFound nếu id không tồn tại
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}
