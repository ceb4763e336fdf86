package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multimedia-api/internal/domains/author/model"
	"multimedia-api/internal/domains/author/repository/mocks"
	"multimedia-api/internal/shared/apperr"
)

func strPtr(s string) *string { return &s }

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.Repository)
		svc := NewAuthorService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(a *model.Author) bool {
			return a.ID != uuid.Nil && a.Nome == "Machado de Assis" && a.Bio == nil
		})).Return(&model.Author{Nome: "Machado de Assis"}, nil).Once()

		a, err := svc.Create(ctx, &model.CreateAuthorRequest{Nome: strPtr(" Machado de Assis "), Bio: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "Machado de Assis", a.Nome)
		repo.AssertExpectations(t)
	})

	t.Run("Blank name never reaches the store", func(t *testing.T) {
		repo := new(mocks.Repository)
		svc := NewAuthorService(repo)

		_, err := svc.Create(ctx, &model.CreateAuthorRequest{Nome: strPtr("   ")})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("Partial merge keeps untouched fields", func(t *testing.T) {
		repo := new(mocks.Repository)
		svc := NewAuthorService(repo)

		repo.On("GetByID", ctx, id).Return(&model.Author{ID: id, Nome: "Rachel", Bio: strPtr("bio")}, nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(a *model.Author) bool {
			return a.Nome == "Rachel de Queiroz" && *a.Bio == "bio"
		})).Return(&model.Author{ID: id, Nome: "Rachel de Queiroz"}, nil).Once()

		a, err := svc.Update(ctx, id, &model.UpdateAuthorRequest{Nome: strPtr("Rachel de Queiroz")})
		require.NoError(t, err)
		assert.Equal(t, "Rachel de Queiroz", a.Nome)
		repo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(mocks.Repository)
		svc := NewAuthorService(repo)

		repo.On("GetByID", ctx, id).Return(nil, model.ErrAuthorNotFound).Once()

		_, err := svc.Update(ctx, id, &model.UpdateAuthorRequest{})
		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	})

	t.Run("Blanking the name is rejected", func(t *testing.T) {
		repo := new(mocks.Repository)
		svc := NewAuthorService(repo)

		repo.On("GetByID", ctx, id).Return(&model.Author{ID: id, Nome: "Rachel"}, nil).Once()

		_, err := svc.Update(ctx, id, &model.UpdateAuthorRequest{Nome: strPtr(" ")})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Nil id short-circuits", func(t *testing.T) {
		repo := new(mocks.Repository)
		svc := NewAuthorService(repo)

		_, err := svc.Update(ctx, uuid.Nil, &model.UpdateAuthorRequest{})
		assert.ErrorIs(t, err, model.ErrAuthorNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestAuthorService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.Repository)
	svc := NewAuthorService(repo)
	id := uuid.New()

	repo.On("Delete", ctx, id).Return(nil).Once()
	repo.On("Delete", ctx, id).Return(model.ErrAuthorNotFound).Once()

	assert.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), model.ErrAuthorNotFound)
	repo.AssertExpectations(t)
}
