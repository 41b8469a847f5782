package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// CustomerRepository defines persistence access for portal customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.CustomerAccount) error
	Update(ctx context.Context, customer *domain.CustomerAccount) error
	GetByID(ctx context.Context, id string) (*domain.CustomerAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.CustomerAccount, error)
}

type customerRepository struct {
	db DB
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.CustomerAccount) error {
	const query = `
        INSERT INTO customer_accounts (email, password_hash, first_name, last_name, phone, active)
        VALUES (LOWER($1), $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		customer.Email,
		customer.PasswordHash,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Active,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.CustomerAccount) error {
	const query = `
        UPDATE customer_accounts SET email=LOWER($1), password_hash=$2, first_name=$3, last_name=$4, phone=$5, active=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.db.Exec(ctx, query,
		customer.Email,
		customer.PasswordHash,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.Active,
		customer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.CustomerAccount, error) {
	const query = `
        SELECT id, email, password_hash, first_name, last_name, phone, active, created_at, updated_at
        FROM customer_accounts WHERE id=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.CustomerAccount, error) {
	const query = `
        SELECT id, email, password_hash, first_name, last_name, phone, active, created_at, updated_at
        FROM customer_accounts WHERE email=LOWER($1)`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *customerRepository) scanOne(row pgx.Row) (*domain.CustomerAccount, error) {
	var customer domain.CustomerAccount
	if err := row.Scan(
		&customer.ID,
		&customer.Email,
		&customer.PasswordHash,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.Active,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}
