package zatca

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists submission records.
type Repository interface {
	Insert(ctx context.Context, sub Submission) (int64, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert records a submission attempt.
func (r *PGRepository) Insert(ctx context.Context, sub Submission) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO zatca_submissions (invoice_id, uuid, status, submitted_at)
VALUES ($1, $2, $3, NOW()) RETURNING id`,
		sub.InvoiceID, sub.UUID, string(sub.Status)).Scan(&id)
	return id, err
}

var _ Repository = (*PGRepository)(nil)
