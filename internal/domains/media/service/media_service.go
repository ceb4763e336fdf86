package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"multimedia-api/internal/domains/media/model"
	"multimedia-api/internal/domains/media/repository"
	"multimedia-api/internal/shared/apperr"
)

type mediaService struct {
	repo repository.Repository
	kind model.Kind
}

func NewMediaService(repo repository.Repository) ServiceInterface {
	return &mediaService{repo: repo, kind: repo.Kind()}
}

func (s *mediaService) Kind() model.Kind {
	return s.kind
}

func project(items []model.Item, p model.Projection) []model.Item {
	for i := range items {
		items[i].Autor = items[i].Autor.Project(p)
	}
	return items
}

func (s *mediaService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return project(items, model.ProjectionSummary), nil
}

// GetByID trả author đầy đủ hơn list (có bio)
func (s *mediaService) GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	if id == uuid.Nil {
		return nil, model.ErrItemNotFound
	}

	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	it.Autor = it.Autor.Project(model.ProjectionDetail)
	return it, nil
}

func (s *mediaService) Create(ctx context.Context, req *model.CreateItemRequest) (*model.Item, error) {
	if err := req.Validate(s.kind); err != nil {
		return nil, err
	}

	it := req.ToEntity(s.kind)
	it.ID = uuid.New()
	if err := it.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return s.reread(ctx, it)
}

// Update không atomic: đọc, merge, ghi, đọc lại là các lệnh riêng; last-write-wins
func (s *mediaService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateItemRequest) (*model.Item, error) {
	if id == uuid.Nil {
		return nil, model.ErrItemNotFound
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(s.kind); err != nil {
		return nil, err
	}
	req.ApplyToEntity(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return s.reread(ctx, current)
}

func (s *mediaService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrItemNotFound
	}
	return s.repo.Delete(ctx, id)
}

// reread đọc lại item vừa ghi để resolve author (projection summary).
// Item bị xoá giữa hai lệnh -> trả bản đã ghi, không có author.
func (s *mediaService) reread(ctx context.Context, written *model.Item) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, written.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			written.Autor = nil
			return written, nil
		}
		return nil, err
	}
	it.Autor = it.Autor.Project(model.ProjectionSummary)
	return it, nil
}
