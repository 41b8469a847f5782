package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// AdminRepository defines persistence access for back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminAccount) error
	Update(ctx context.Context, admin *domain.AdminAccount) error
	GetByID(ctx context.Context, id string) (*domain.AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error)
}

type adminRepository struct {
	db DB
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(db DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.AdminAccount) error {
	const query = `
        INSERT INTO admin_accounts (username, email, password_hash, role, active)
        VALUES ($1, LOWER($2), $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.Active,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.AdminAccount) error {
	const query = `
        UPDATE admin_accounts SET username=$1, email=LOWER($2), password_hash=$3, role=$4, active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.db.Exec(ctx, query,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.Active,
		admin.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.AdminAccount, error) {
	const query = `
        SELECT id, username, email, password_hash, role, active, created_at, updated_at
        FROM admin_accounts WHERE id=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	const query = `
        SELECT id, username, email, password_hash, role, active, created_at, updated_at
        FROM admin_accounts WHERE email=LOWER($1)`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *adminRepository) scanOne(row pgx.Row) (*domain.AdminAccount, error) {
	var admin domain.AdminAccount
	if err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.Active,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}
