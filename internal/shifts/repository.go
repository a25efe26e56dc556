package shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

const pgUniqueViolation = "23505"

// Repository defines persistence operations for shifts.
type Repository interface {
	Insert(ctx context.Context, shift Shift) (int64, error)
	Close(ctx context.Context, shiftID int64, closingBalance float64) error
	Get(ctx context.Context, shiftID int64) (*Shift, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Insert creates an open shift. A partial unique index on (safe_id) where
// closed_at is null keeps at most one open shift per safe; concurrent opens
// lose with a unique violation mapped to a duplicate error.
func (r *PGRepository) Insert(ctx context.Context, shift Shift) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO shifts (branch_id, safe_id, user_id, opening_balance, opened_at)
VALUES ($1, $2, $3, $4, NOW()) RETURNING id`,
		shift.BranchID, shift.SafeID, shift.UserID, shift.OpeningBalance).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, fmt.Errorf("%w: safe %d already has an open shift", httpx.ErrDuplicate, shift.SafeID)
		}
		return 0, err
	}
	return id, nil
}

// Close records the closing balance and timestamp, only for an open shift.
func (r *PGRepository) Close(ctx context.Context, shiftID int64, closingBalance float64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE shifts SET closing_balance = $2, closed_at = NOW()
WHERE id = $1 AND closed_at IS NULL`, shiftID, closingBalance)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	// Distinguish an unknown shift from one that is already closed.
	if _, err := r.Get(ctx, shiftID); err != nil {
		return err
	}
	return fmt.Errorf("%w: shift %d is already closed", httpx.ErrValidation, shiftID)
}

// Get loads a shift by id.
func (r *PGRepository) Get(ctx context.Context, shiftID int64) (*Shift, error) {
	var shift Shift
	err := r.pool.QueryRow(ctx, `SELECT id, branch_id, safe_id, user_id, opening_balance, closing_balance, opened_at, closed_at
FROM shifts WHERE id = $1`, shiftID).
		Scan(&shift.ID, &shift.BranchID, &shift.SafeID, &shift.UserID, &shift.OpeningBalance, &shift.ClosingBalance, &shift.OpenedAt, &shift.ClosedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: shift %d", httpx.ErrNotFound, shiftID)
		}
		return nil, err
	}
	return &shift, nil
}

var _ Repository = (*PGRepository)(nil)
