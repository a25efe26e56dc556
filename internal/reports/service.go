package reports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// maxReportRange bounds the sales report window.
const maxReportRange = 366 * 24 * time.Hour

// Service serves dashboard and sales-report aggregates.
type Service struct {
	repo  Repository
	cache *Cache
}

// NewService builds Service.
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Dashboard returns today's aggregates for one branch, cached under the
// current cache version.
func (s *Service) Dashboard(ctx context.Context, branchID int64) (Dashboard, error) {
	if branchID <= 0 {
		return Dashboard{}, fmt.Errorf("%w: branch id must be positive", httpx.ErrValidation)
	}
	key, err := s.cache.BuildKey(ctx, "dashboard", strconv.FormatInt(branchID, 10))
	if err != nil {
		return Dashboard{}, err
	}
	var dash Dashboard
	err = s.cache.FetchJSON(ctx, key, &dash, func(ctx context.Context) (interface{}, error) {
		return s.loadDashboard(ctx, branchID)
	})
	return dash, err
}

// WarmDashboard recomputes and stores the dashboard for one branch,
// overwriting whatever is cached.
func (s *Service) WarmDashboard(ctx context.Context, branchID int64) error {
	dash, err := s.loadDashboard(ctx, branchID)
	if err != nil {
		return err
	}
	key, err := s.cache.BuildKey(ctx, "dashboard", strconv.FormatInt(branchID, 10))
	if err != nil {
		return err
	}
	return s.cache.StoreJSON(ctx, key, dash)
}

// BranchIDs exposes the branch list for the warmup job.
func (s *Service) BranchIDs(ctx context.Context) ([]int64, error) {
	return s.repo.BranchIDs(ctx)
}

// loadDashboard fans the four aggregate queries out concurrently; each runs
// on its own pooled connection.
func (s *Service) loadDashboard(ctx context.Context, branchID int64) (Dashboard, error) {
	var dash Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dash.DailySales, err = s.repo.DailySalesTotal(ctx, branchID)
		return err
	})
	g.Go(func() error {
		var err error
		dash.TotalProducts, err = s.repo.InStockProductCount(ctx, branchID)
		return err
	})
	g.Go(func() error {
		var err error
		dash.CashBalance, err = s.repo.CashBalance(ctx, branchID)
		return err
	})
	g.Go(func() error {
		var err error
		dash.InvoiceCount, err = s.repo.TodayInvoiceCount(ctx, branchID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return dash, nil
}

// SalesReport returns per-day invoice count, sales total and VAT total for a
// date range, newest day first.
func (s *Service) SalesReport(ctx context.Context, branchID int64, from, to time.Time) ([]DailySales, error) {
	if branchID <= 0 {
		return nil, fmt.Errorf("%w: branch id must be positive", httpx.ErrValidation)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: start date is after end date", httpx.ErrValidation)
	}
	if to.Sub(from) > maxReportRange {
		return nil, fmt.Errorf("%w: report range exceeds one year", httpx.ErrValidation)
	}
	return s.repo.SalesByDay(ctx, branchID, from, to)
}
