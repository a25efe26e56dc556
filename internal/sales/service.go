package sales

import (
	"context"
	"fmt"
	"math"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// moneyTolerance absorbs binary float noise when comparing submitted and
// recomputed amounts.
const moneyTolerance = 0.01

// RepositoryPort abstracts repository usage for the service.
type RepositoryPort interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
}

// CacheInvalidator is notified after an invoice commits so stale dashboard
// aggregates are not served.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

// MetricsPort records committed invoices.
type MetricsPort interface {
	InvoiceCreated()
}

// Service coordinates invoice creation and lookup.
type Service struct {
	repo    RepositoryPort
	cache   CacheInvalidator
	metrics MetricsPort
}

// NewService builds Service. Cache and metrics are optional.
func NewService(repo RepositoryPort, cache CacheInvalidator, metrics MetricsPort) *Service {
	return &Service{repo: repo, cache: cache, metrics: metrics}
}

// CreateInvoice atomically persists the invoice header, its lines and the
// matching inventory decrements, in input order. Validation happens before
// the transaction opens; any failure inside it rolls everything back and the
// caller sees exactly one error.
func (s *Service) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (int64, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}

	var invoiceID int64
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		id, err := tx.InsertInvoice(ctx, Invoice{
			BranchID:      req.BranchID,
			CustomerID:    req.CustomerID,
			TotalAmount:   req.TotalAmount,
			VATAmount:     req.VATAmount,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			return err
		}
		for _, item := range req.Items {
			line := InvoiceLine{
				InvoiceID: id,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				LineTotal: item.LineTotal,
			}
			if err := tx.InsertLine(ctx, line); err != nil {
				return err
			}
			if err := tx.DecrementInventory(ctx, req.BranchID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		invoiceID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		_ = s.cache.Bump(ctx)
	}
	if s.metrics != nil {
		s.metrics.InvoiceCreated()
	}
	return invoiceID, nil
}

// GetInvoice returns a committed invoice with its lines.
func (s *Service) GetInvoice(ctx context.Context, id int64) (*Invoice, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invoice id must be positive", httpx.ErrValidation)
	}
	return s.repo.GetInvoice(ctx, id)
}

// validate enforces the preconditions and recomputes the submitted totals.
// The caller's amounts are not trusted: each line total must match
// quantity*unitPrice and the header total must equal the line sum plus VAT.
func (s *Service) validate(req CreateInvoiceRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: invoice requires at least one item", httpx.ErrValidation)
	}
	if req.BranchID <= 0 || req.CustomerID <= 0 {
		return fmt.Errorf("%w: branch and customer are required", httpx.ErrValidation)
	}
	switch req.PaymentMethod {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodCredit:
	default:
		return fmt.Errorf("%w: unknown payment method %q", httpx.ErrValidation, req.PaymentMethod)
	}

	var lineSum float64
	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: item %d: product is required", httpx.ErrValidation, i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive", httpx.ErrValidation, i+1)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d: unit price must not be negative", httpx.ErrValidation, i+1)
		}
		expected := float64(item.Quantity) * item.UnitPrice
		if math.Abs(item.LineTotal-expected) > moneyTolerance {
			return fmt.Errorf("%w: item %d: line total %.2f does not match quantity*unitPrice %.2f", httpx.ErrValidation, i+1, item.LineTotal, expected)
		}
		lineSum += item.LineTotal
	}
	if req.VATAmount < 0 {
		return fmt.Errorf("%w: vat amount must not be negative", httpx.ErrValidation)
	}
	if math.Abs(req.TotalAmount-(lineSum+req.VATAmount)) > moneyTolerance {
		return fmt.Errorf("%w: total amount %.2f does not match line sum %.2f plus vat %.2f", httpx.ErrValidation, req.TotalAmount, lineSum, req.VATAmount)
	}
	return nil
}
