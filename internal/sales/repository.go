package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-pos/meridian-pos/internal/platform/db"
	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

const pgForeignKeyViolation = "23503"

// Repository persists sales invoices in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// TxRepository exposes the operations that must share one transaction.
type TxRepository interface {
	InsertInvoice(ctx context.Context, inv Invoice) (int64, error)
	InsertLine(ctx context.Context, line InvoiceLine) error
	DecrementInventory(ctx context.Context, branchID, productID, quantity int64) error
}

type txRepository struct {
	tx pgx.Tx
}

// WithTx runs fn inside a single transaction; any error rolls everything back.
func (r *Repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	if r == nil {
		return errors.New("sales repository not initialised")
	}
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepository{tx: tx})
	})
}

// GetInvoice loads a committed invoice header with its lines.
func (r *Repository) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	var inv Invoice
	err := r.pool.QueryRow(ctx, `SELECT id, branch_id, customer_id, invoice_date, total_amount, vat_amount, payment_method
FROM sales_invoices WHERE id = $1`, id).
		Scan(&inv.ID, &inv.BranchID, &inv.CustomerID, &inv.InvoiceDate, &inv.TotalAmount, &inv.VATAmount, &inv.PaymentMethod)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: invoice %d", httpx.ErrNotFound, id)
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT id, invoice_id, product_id, quantity, unit_price, line_total
FROM sales_invoice_details WHERE invoice_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var line InvoiceLine
		if err := rows.Scan(&line.ID, &line.InvoiceID, &line.ProductID, &line.Quantity, &line.UnitPrice, &line.LineTotal); err != nil {
			return nil, err
		}
		inv.Lines = append(inv.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *txRepository) InsertInvoice(ctx context.Context, inv Invoice) (int64, error) {
	var id int64
	err := r.tx.QueryRow(ctx, `INSERT INTO sales_invoices (branch_id, customer_id, invoice_date, total_amount, vat_amount, payment_method)
VALUES ($1, $2, NOW(), $3, $4, $5) RETURNING id`,
		inv.BranchID, inv.CustomerID, inv.TotalAmount, inv.VATAmount, string(inv.PaymentMethod)).Scan(&id)
	if err != nil {
		return 0, mapConstraintError(err)
	}
	return id, nil
}

func (r *txRepository) InsertLine(ctx context.Context, line InvoiceLine) error {
	_, err := r.tx.Exec(ctx, `INSERT INTO sales_invoice_details (invoice_id, product_id, quantity, unit_price, line_total)
VALUES ($1, $2, $3, $4, $5)`,
		line.InvoiceID, line.ProductID, line.Quantity, line.UnitPrice, line.LineTotal)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

// DecrementInventory reduces on-hand stock for one (branch, product) pair.
// Every input is a bound parameter. A decrement that touches no row means the
// product has no inventory record at that branch, which must abort the
// transaction rather than commit an invoice with no stock movement.
func (r *txRepository) DecrementInventory(ctx context.Context, branchID, productID, quantity int64) error {
	tag, err := r.tx.Exec(ctx, `UPDATE inventory SET quantity_on_hand = quantity_on_hand - $3, updated_at = NOW()
WHERE branch_id = $1 AND product_id = $2`, branchID, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no inventory record for product %d at branch %d", httpx.ErrValidation, productID, branchID)
	}
	return nil
}

// mapConstraintError surfaces foreign-key violations as validation failures
// so an unknown branch, customer or product rejects the request instead of
// reporting an internal error.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", httpx.ErrValidation, pgErr.ConstraintName)
	}
	return err
}
