package service

import (
	"context"

	"github.com/google/uuid"

	"multimedia-api/internal/domains/author/model"
	"multimedia-api/internal/domains/author/repository"
)

type authorService struct {
	repo repository.Repository
}

func NewAuthorService(repo repository.Repository) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	a := req.ToEntity()
	if err := a.Validate(); err != nil {
		return nil, err
	}

	a.ID = uuid.New()
	return s.repo.Create(ctx, a)
}

// Update không atomic: đọc, merge, ghi là các lệnh riêng; last-write-wins
func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(current)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, current)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return model.ErrAuthorNotFound
	}
	return s.repo.Delete(ctx, id)
}
