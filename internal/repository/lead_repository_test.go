package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/business-site-service/internal/domain"
)

func leadRows(leads ...domain.Lead) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "reference", "kind", "name", "email", "phone", "message",
		"service_type", "property_type", "status", "created_at", "updated_at",
	})
	for _, l := range leads {
		rows.AddRow(l.ID, l.Reference, l.Kind, l.Name, l.Email, l.Phone, l.Message,
			l.ServiceType, l.PropertyType, l.Status, l.CreatedAt, l.UpdatedAt)
	}
	return rows
}

func TestLeadRepository_Create(t *testing.T) {
	pool := newMockPool(t)
	repo := NewLeadRepository(pool)

	now := time.Now()
	pool.ExpectQuery(`INSERT INTO leads`).
		WithArgs("ref-1", domain.LeadKindQuote, "Jane Doe", "jane@example.com", "555-0101",
			"Quote please", "rewiring", "residential", domain.LeadStatusNew).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("lead-1", now, now))

	lead := &domain.Lead{
		Reference:    "ref-1",
		Kind:         domain.LeadKindQuote,
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "555-0101",
		Message:      "Quote please",
		ServiceType:  "rewiring",
		PropertyType: "residential",
		Status:       domain.LeadStatusNew,
	}
	require.NoError(t, repo.Create(context.Background(), lead))
	assert.Equal(t, "lead-1", lead.ID)

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestLeadRepository_List_FiltersByKindAndStatus(t *testing.T) {
	pool := newMockPool(t)
	repo := NewLeadRepository(pool)

	kind := domain.LeadKindContact
	status := domain.LeadStatusNew
	now := time.Now()

	pool.ExpectQuery(`FROM leads WHERE kind=\$1 AND status=\$2 ORDER BY created_at DESC LIMIT \$3`).
		WithArgs(kind, status, 20).
		WillReturnRows(leadRows(domain.Lead{
			ID:        "lead-1",
			Reference: "ref-1",
			Kind:      kind,
			Name:      "John Smith",
			Email:     "john@example.com",
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		}))

	leads, err := repo.List(context.Background(), LeadFilter{Kind: &kind, Status: &status, Limit: 20})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "lead-1", leads[0].ID)

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestLeadRepository_List_NoFilters(t *testing.T) {
	pool := newMockPool(t)
	repo := NewLeadRepository(pool)

	pool.ExpectQuery(`FROM leads ORDER BY created_at DESC`).
		WillReturnRows(leadRows())

	leads, err := repo.List(context.Background(), LeadFilter{})
	require.NoError(t, err)
	assert.Empty(t, leads)

	require.NoError(t, pool.ExpectationsWereMet())
}

func TestLeadRepository_UpdateStatus_MissingRow(t *testing.T) {
	pool := newMockPool(t)
	repo := NewLeadRepository(pool)

	pool.ExpectExec(`UPDATE leads SET status=\$1`).
		WithArgs(domain.LeadStatusClosed, "missing-id").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), "missing-id", domain.LeadStatusClosed)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	require.NoError(t, pool.ExpectationsWereMet())
}
