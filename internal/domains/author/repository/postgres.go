package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"multimedia-api/internal/domains/author/model"
	"multimedia-api/internal/shared/apperr"
	"multimedia-api/pkg/logger"
)

const authorColumns = `id, nome, bio, nacionalidade, created_at, updated_at`

// postgresRepository implements Repository using pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.Nome,
		&a.Bio,
		&a.Nacionalidade,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY nome COLLATE "C" ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		logger.Error("List: rows error", err)
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (id, nome, bio, nacionalidade)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.ID, a.Nome, a.Bio, a.Nacionalidade))
	if err != nil {
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create author: %w", apperr.FromPostgres(err))
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET nome = $2, bio = $3, nacionalidade = $4, updated_at = now()
        WHERE id = $1
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, a.ID, a.Nome, a.Bio, a.Nacionalidade))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		logger.Error("Update: database error", err)
		return nil, fmt.Errorf("failed to update author: %w", apperr.FromPostgres(err))
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}
