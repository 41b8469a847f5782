package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// TipFilter captures public listing parameters.
type TipFilter struct {
	PublishedOnly bool
	Category      *string
	SearchTerm    *string
	Limit         int
	Offset        int
}

// TipRepository encapsulates maintenance-tip persistence.
type TipRepository interface {
	Create(ctx context.Context, tip *domain.Tip) error
	Update(ctx context.Context, tip *domain.Tip) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Tip, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tip, error)
	List(ctx context.Context, filter TipFilter) ([]domain.Tip, error)
}

type tipRepository struct {
	db DB
}

// NewTipRepository instantiates repository.
func NewTipRepository(db DB) TipRepository {
	return &tipRepository{db: db}
}

const tipColumns = "id, slug, title, body, category, published, published_at, author_id, created_at, updated_at"

func (r *tipRepository) Create(ctx context.Context, tip *domain.Tip) error {
	const query = `
        INSERT INTO tips (slug, title, body, category, published, published_at, author_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		tip.Slug,
		tip.Title,
		tip.Body,
		tip.Category,
		tip.Published,
		tip.PublishedAt,
		tip.AuthorID,
	).Scan(&tip.ID, &tip.CreatedAt, &tip.UpdatedAt)
}

func (r *tipRepository) Update(ctx context.Context, tip *domain.Tip) error {
	const query = `
        UPDATE tips SET slug=$1, title=$2, body=$3, category=$4, published=$5, published_at=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.db.Exec(ctx, query,
		tip.Slug,
		tip.Title,
		tip.Body,
		tip.Category,
		tip.Published,
		tip.PublishedAt,
		tip.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tipRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM tips WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tipRepository) GetByID(ctx context.Context, id string) (*domain.Tip, error) {
	query := fmt.Sprintf("SELECT %s FROM tips WHERE id=$1", tipColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *tipRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tip, error) {
	query := fmt.Sprintf("SELECT %s FROM tips WHERE slug=$1", tipColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, slug))
}

func (r *tipRepository) List(ctx context.Context, filter TipFilter) ([]domain.Tip, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.PublishedOnly {
		conditions = append(conditions, "published=TRUE")
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.SearchTerm != nil {
		args = append(args, "%"+*filter.SearchTerm+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR body ILIKE $%d)", len(args), len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM tips", tipColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY published_at DESC NULLS LAST, created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tips []domain.Tip
	for rows.Next() {
		var tip domain.Tip
		if err := rows.Scan(
			&tip.ID,
			&tip.Slug,
			&tip.Title,
			&tip.Body,
			&tip.Category,
			&tip.Published,
			&tip.PublishedAt,
			&tip.AuthorID,
			&tip.CreatedAt,
			&tip.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tips = append(tips, tip)
	}
	return tips, rows.Err()
}

func (r *tipRepository) scanOne(row pgx.Row) (*domain.Tip, error) {
	var tip domain.Tip
	if err := row.Scan(
		&tip.ID,
		&tip.Slug,
		&tip.Title,
		&tip.Body,
		&tip.Category,
		&tip.Published,
		&tip.PublishedAt,
		&tip.AuthorID,
		&tip.CreatedAt,
		&tip.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &tip, nil
}
