package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// LeadFilter captures admin listing parameters.
type LeadFilter struct {
	Kind   *domain.LeadKind
	Status *domain.LeadStatus
	Limit  int
	Offset int
}

// LeadRepository encapsulates lead persistence.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error
}

type leadRepository struct {
	db DB
}

// NewLeadRepository instantiates repository.
func NewLeadRepository(db DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	const query = `
        INSERT INTO leads (reference, kind, name, email, phone, message, service_type, property_type, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		lead.Reference,
		lead.Kind,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Message,
		lead.ServiceType,
		lead.PropertyType,
		lead.Status,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *leadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	const query = `
        SELECT id, reference, kind, name, email, phone, message, service_type, property_type, status, created_at, updated_at
        FROM leads WHERE id=$1`

	var lead domain.Lead
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.Reference,
		&lead.Kind,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Message,
		&lead.ServiceType,
		&lead.PropertyType,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) List(ctx context.Context, filter LeadFilter) ([]domain.Lead, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		conditions = append(conditions, fmt.Sprintf("kind=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status=$%d", len(args)))
	}

	query := `
        SELECT id, reference, kind, name, email, phone, message, service_type, property_type, status, created_at, updated_at
        FROM leads`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

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

	var leads []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Reference,
			&lead.Kind,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.Message,
			&lead.ServiceType,
			&lead.PropertyType,
			&lead.Status,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *leadRepository) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	const query = `
        UPDATE leads SET status=$1, updated_at=NOW()
        WHERE id=$2`
	cmd, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
