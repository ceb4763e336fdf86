package memstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "multimedia-api/internal/domains/author/model"
	mediamodel "multimedia-api/internal/domains/media/model"
)

func strPtr(s string) *string { return &s }

func TestAuthors_SortedByNome(t *testing.T) {
	ctx := context.Background()
	repo := New().Authors()

	for _, nome := range []string{"Zélia Gattai", "Adélia Prado", "Manoel de Barros"} {
		_, err := repo.Create(ctx, &authormodel.Author{ID: uuid.New(), Nome: nome})
		require.NoError(t, err)
	}

	authors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, "Adélia Prado", authors[0].Nome)
	assert.Equal(t, "Manoel de Barros", authors[1].Nome)
	assert.Equal(t, "Zélia Gattai", authors[2].Nome)
}

func TestAuthors_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := New().Authors()
	id := uuid.New()

	created, err := repo.Create(ctx, &authormodel.Author{ID: id, Nome: "Cecília"})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := repo.Update(ctx, &authormodel.Author{ID: id, Nome: "Cecília Meireles"})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), authormodel.ErrAuthorNotFound)

	_, err = repo.Update(ctx, &authormodel.Author{ID: id, Nome: "x"})
	assert.ErrorIs(t, err, authormodel.ErrAuthorNotFound)
}

func TestMedia_ResolvesAuthorAtReadTime(t *testing.T) {
	ctx := context.Background()
	store := New()
	authors := store.Authors()
	books := store.Media(mediamodel.KindBook)

	authorID := uuid.New()
	_, err := authors.Create(ctx, &authormodel.Author{ID: authorID, Nome: "Graciliano Ramos", Bio: strPtr("bio")})
	require.NoError(t, err)

	itemID := uuid.New()
	require.NoError(t, books.Create(ctx, &mediamodel.Item{ID: itemID, Titulo: "Vidas Secas", AutorID: authorID}))

	it, err := books.GetByID(ctx, itemID)
	require.NoError(t, err)
	require.NotNil(t, it.Autor)
	assert.Equal(t, "Graciliano Ramos", it.Autor.Nome)

	// rename is visible without touching the item
	_, err = authors.Update(ctx, &authormodel.Author{ID: authorID, Nome: "G. Ramos"})
	require.NoError(t, err)
	it, err = books.GetByID(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, "G. Ramos", it.Autor.Nome)

	// deleting the author leaves a dangling reference, not an error
	require.NoError(t, authors.Delete(ctx, authorID))
	it, err = books.GetByID(ctx, itemID)
	require.NoError(t, err)
	assert.Nil(t, it.Autor)
	assert.Equal(t, authorID, it.AutorID)
}

func TestMedia_KindsAreIsolatedAndSorted(t *testing.T) {
	ctx := context.Background()
	store := New()
	cds := store.Media(mediamodel.KindCD)
	dvds := store.Media(mediamodel.KindDVD)

	for _, titulo := range []string{"Tropicália", "Clube da Esquina", "Tropicália"} {
		require.NoError(t, cds.Create(ctx, &mediamodel.Item{ID: uuid.New(), Titulo: titulo, AutorID: uuid.New()}))
	}

	items, err := cds.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Clube da Esquina", items[0].Titulo)
	assert.Equal(t, "Tropicália", items[1].Titulo)
	assert.True(t, items[1].CreatedAt.Before(items[2].CreatedAt) || items[1].CreatedAt.Equal(items[2].CreatedAt))

	other, err := dvds.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = dvds.GetByID(ctx, items[0].ID)
	assert.ErrorIs(t, err, mediamodel.ErrItemNotFound)
}

func TestMedia_UpdateMissing(t *testing.T) {
	repo := New().Media(mediamodel.KindDVD)
	err := repo.Update(context.Background(), &mediamodel.Item{ID: uuid.New(), Titulo: "x"})
	assert.ErrorIs(t, err, mediamodel.ErrItemNotFound)
}

func TestMedia_SortIsByteOrder(t *testing.T) {
	ctx := context.Background()
	repo := New().Media(mediamodel.KindBook)

	for _, titulo := range []string{"ética", "Zumbi", "abc", "Árvore"} {
		require.NoError(t, repo.Create(ctx, &mediamodel.Item{ID: uuid.New(), Titulo: titulo, AutorID: uuid.New()}))
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)

	var got []string
	for _, it := range items {
		got = append(got, it.Titulo)
	}
	// uppercase before lowercase, accented letters last
	assert.Equal(t, []string{"Zumbi", "abc", "Árvore", "ética"}, got)
}
