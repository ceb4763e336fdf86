package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"multimedia-api/internal/domains/author/model"
	"multimedia-api/pkg/cache"
	"multimedia-api/pkg/logger"
)

const (
	authorCacheKeyPrefix = "author:"
	authorGenKeyPrefix   = "author-gen:"
)

// cachedRepository là read-through cache cho GetByID.
// Lỗi cache chỉ log, không bao giờ làm fail request.
//
// Mỗi author có một generation counter. Update/Delete bump counter trước khi
// xoá key; lần populate chỉ ghi nếu counter không đổi kể từ trước khi đọc DB,
// nên một lần đọc chậm không thể ghi lại bản cũ sau khi đã invalidate.
type cachedRepository struct {
	Repository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository wraps inner with a Redis read-through cache keyed by id.
func NewCachedRepository(inner Repository, c cache.Cache, ttl time.Duration) Repository {
	return &cachedRepository{Repository: inner, cache: c, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return authorCacheKeyPrefix + id.String()
}

func genKey(id uuid.UUID) string {
	return authorGenKeyPrefix + id.String()
}

func (r *cachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var a model.Author
	found, err := r.cache.Get(ctx, cacheKey(id), &a)
	if err != nil {
		logger.Warn("GetByID: cache read failed", map[string]interface{}{"author_id": id.String(), "error": err.Error()})
	}
	if found {
		return &a, nil
	}

	// generation phải đọc TRƯỚC khi đọc DB
	gen, genErr := r.cache.Generation(ctx, genKey(id))
	if genErr != nil {
		logger.Warn("GetByID: cache generation read failed", map[string]interface{}{"author_id": id.String(), "error": genErr.Error()})
	}

	fresh, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return fresh, nil
	}

	stored, err := r.cache.SetIfGeneration(ctx, cacheKey(id), fresh, r.ttl, genKey(id), gen)
	if err != nil {
		logger.Warn("GetByID: cache write failed", map[string]interface{}{"author_id": id.String(), "error": err.Error()})
	} else if !stored {
		logger.Debug("GetByID: author changed while loading, cache not populated")
	}
	return fresh, nil
}

func (r *cachedRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	updated, err := r.Repository.Update(ctx, a)
	r.invalidate(ctx, a.ID)
	return updated, err
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.Repository.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *cachedRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Bump(ctx, genKey(id)); err != nil {
		logger.Error("invalidate: cache generation bump failed", err)
	}
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		logger.Error("invalidate: cache delete failed", err)
	}
}

// FlushCache drops every cached author. Called once at startup because the
// store may have changed while this process was down.
func FlushCache(ctx context.Context, c cache.Cache) error {
	return c.DeletePattern(ctx, authorCacheKeyPrefix+"*")
}
