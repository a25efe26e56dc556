package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository runs the read-only aggregate queries. It reflects committed
// state at query time; nothing here mutates.
type Repository interface {
	DailySalesTotal(ctx context.Context, branchID int64) (float64, error)
	InStockProductCount(ctx context.Context, branchID int64) (int64, error)
	CashBalance(ctx context.Context, branchID int64) (float64, error)
	TodayInvoiceCount(ctx context.Context, branchID int64) (int64, error)
	SalesByDay(ctx context.Context, branchID int64, from, to time.Time) ([]DailySales, error)
	BranchIDs(ctx context.Context) ([]int64, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) DailySalesTotal(ctx context.Context, branchID int64) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_amount), 0) FROM sales_invoices
WHERE branch_id = $1 AND invoice_date::date = CURRENT_DATE`, branchID).Scan(&total)
	return total, err
}

func (r *PGRepository) InStockProductCount(ctx context.Context, branchID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory
WHERE branch_id = $1 AND quantity_on_hand > 0`, branchID).Scan(&count)
	return count, err
}

func (r *PGRepository) CashBalance(ctx context.Context, branchID int64) (float64, error) {
	var balance float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM safes
WHERE branch_id = $1`, branchID).Scan(&balance)
	return balance, err
}

func (r *PGRepository) TodayInvoiceCount(ctx context.Context, branchID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales_invoices
WHERE branch_id = $1 AND invoice_date::date = CURRENT_DATE`, branchID).Scan(&count)
	return count, err
}

func (r *PGRepository) SalesByDay(ctx context.Context, branchID int64, from, to time.Time) ([]DailySales, error) {
	rows, err := r.pool.Query(ctx, `SELECT invoice_date::date AS day, COUNT(*), SUM(total_amount), SUM(vat_amount)
FROM sales_invoices
WHERE branch_id = $1 AND invoice_date::date BETWEEN $2 AND $3
GROUP BY day
ORDER BY day DESC`, branchID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []DailySales{}
	for rows.Next() {
		var row DailySales
		if err := rows.Scan(&row.Date, &row.InvoiceCount, &row.TotalSales, &row.TotalVAT); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// BranchIDs lists the branches known to the cash-safe ledger, used by the
// warmup job to decide which dashboards to precompute.
func (r *PGRepository) BranchIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT branch_id FROM safes ORDER BY branch_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
