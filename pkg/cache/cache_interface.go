package cache

import (
	"context"
	"time"
)

// Cache interface định nghĩa contract cho cache layer
// Cho phép swap implementation (Redis, no-op)
type Cache interface {
	// Get lấy data từ cache và unmarshal vào dest
	// Returns: (found bool, error)
	// - found = true: cache hit, data đã unmarshal vào dest
	// - found = false: cache miss, dest không bị thay đổi
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set lưu data vào cache với TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete xóa các keys khỏi cache
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern xóa tất cả keys match pattern (SCAN, không dùng KEYS)
	DeletePattern(ctx context.Context, pattern string) error

	// Generation đọc counter của genKey (0 nếu chưa có)
	Generation(ctx context.Context, genKey string) (int64, error)

	// Bump tăng counter của genKey; mọi SetIfGeneration đang dở với giá trị cũ sẽ bị bỏ
	Bump(ctx context.Context, genKey string) error

	// SetIfGeneration chỉ ghi key khi counter của genKey vẫn bằng gen (atomic).
	// Returns: stored = false nếu counter đã đổi
	SetIfGeneration(ctx context.Context, key string, value interface{}, ttl time.Duration, genKey string, gen int64) (bool, error)

	// Ping kiểm tra connection
	Ping(ctx context.Context) error
}
