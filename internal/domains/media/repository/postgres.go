package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"multimedia-api/internal/domains/media/model"
	"multimedia-api/internal/shared/apperr"
	"multimedia-api/pkg/logger"
)

// postgresRepository: một instance cho mỗi Kind, cùng code SQL,
// chỉ khác tên bảng và tên cột phân loại
type postgresRepository struct {
	pool *pgxpool.Pool
	kind model.Kind

	table      string
	classifier string
}

func NewPostgresRepository(pool *pgxpool.Pool, kind model.Kind) Repository {
	return &postgresRepository{
		pool:       pool,
		kind:       kind,
		table:      pq.QuoteIdentifier(kind.Resource),
		classifier: pq.QuoteIdentifier(kind.ClassifierField),
	}
}

func (r *postgresRepository) Kind() model.Kind {
	return r.kind
}

func (r *postgresRepository) selectQuery() string {
	return `
        SELECT m.id, m.titulo, m.` + r.classifier + `, m.descricao, m.preco, m.autor_id,
               m.created_at, m.updated_at,
               a.id, a.nome, a.bio, a.nacionalidade
        FROM ` + r.table + ` m
        LEFT JOIN authors a ON a.id = m.autor_id`
}

func (r *postgresRepository) scanItem(row pgx.Row) (*model.Item, error) {
	it := model.Item{Kind: r.kind}
	var (
		refID   *uuid.UUID
		refNome *string
		refBio  *string
		refNac  *string
	)
	err := row.Scan(
		&it.ID,
		&it.Titulo,
		&it.Classificacao,
		&it.Descricao,
		&it.Preco,
		&it.AutorID,
		&it.CreatedAt,
		&it.UpdatedAt,
		&refID,
		&refNome,
		&refBio,
		&refNac,
	)
	if err != nil {
		return nil, err
	}

	if refID != nil {
		ref := &model.AuthorRef{ID: *refID, Bio: refBio, Nacionalidade: refNac}
		if refNome != nil {
			ref.Nome = *refNome
		}
		it.Autor = ref
	}
	return &it, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Item, error) {
	query := r.selectQuery() + ` ORDER BY m.titulo COLLATE "C" ASC, m.created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List: query failed", err)
		return nil, fmt.Errorf("failed to list %s: %w", r.kind.Resource, err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		it, err := r.scanItem(rows)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan %s: %w", r.kind.Name, err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		logger.Error("List: rows error", err)
		return nil, fmt.Errorf("failed to iterate %s: %w", r.kind.Resource, err)
	}

	return items, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	query := r.selectQuery() + ` WHERE m.id = $1`

	it, err := r.scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get %s by id: %w", r.kind.Name, err)
	}
	return it, nil
}

func (r *postgresRepository) Create(ctx context.Context, it *model.Item) error {
	query := `
        INSERT INTO ` + r.table + ` (id, titulo, ` + r.classifier + `, descricao, preco, autor_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		it.ID, it.Titulo, it.Classificacao, it.Descricao, it.Preco, it.AutorID,
	).Scan(&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		logger.Error("Create: database error", err)
		return fmt.Errorf("failed to create %s: %w", r.kind.Name, apperr.FromPostgres(err))
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, it *model.Item) error {
	query := `
        UPDATE ` + r.table + `
        SET titulo = $2, ` + r.classifier + ` = $3, descricao = $4, preco = $5,
            autor_id = $6, updated_at = now()
        WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		it.ID, it.Titulo, it.Classificacao, it.Descricao, it.Preco, it.AutorID,
	)
	if err != nil {
		logger.Error("Update: database error", err)
		return fmt.Errorf("failed to update %s: %w", r.kind.Name, apperr.FromPostgres(err))
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete %s: %w", r.kind.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}
