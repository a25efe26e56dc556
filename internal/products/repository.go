package products

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads product data.
type Repository interface {
	ListByBranch(ctx context.Context, branchID int64) ([]Product, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListByBranch returns every product with its stock at the given branch.
// Products without an inventory row at the branch report zero on hand.
func (r *PGRepository) ListByBranch(ctx context.Context, branchID int64) ([]Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT p.id, p.code, p.name, p.barcode, p.unit_price, p.vat_rate, p.is_active,
       COALESCE(i.quantity_on_hand, 0), p.created_at, p.updated_at
FROM products p
LEFT JOIN inventory i ON p.id = i.product_id AND i.branch_id = $1
ORDER BY p.name`, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Barcode, &p.UnitPrice, &p.VATRate, &p.IsActive, &p.QuantityOnHand, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

var _ Repository = (*PGRepository)(nil)
