package reports

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

type fakeRepo struct {
	dailySales   float64
	productCount int64
	cashBalance  float64
	invoiceCount int64
	branchIDs    []int64
	salesByDay   []DailySales
	loads        atomic.Int64
	failCash     bool
}

func (r *fakeRepo) DailySalesTotal(ctx context.Context, branchID int64) (float64, error) {
	r.loads.Add(1)
	return r.dailySales, nil
}

func (r *fakeRepo) InStockProductCount(ctx context.Context, branchID int64) (int64, error) {
	return r.productCount, nil
}

func (r *fakeRepo) CashBalance(ctx context.Context, branchID int64) (float64, error) {
	if r.failCash {
		return 0, errors.New("safes query failed")
	}
	return r.cashBalance, nil
}

func (r *fakeRepo) TodayInvoiceCount(ctx context.Context, branchID int64) (int64, error) {
	return r.invoiceCount, nil
}

func (r *fakeRepo) SalesByDay(ctx context.Context, branchID int64, from, to time.Time) ([]DailySales, error) {
	return r.salesByDay, nil
}

func (r *fakeRepo) BranchIDs(ctx context.Context) ([]int64, error) {
	return r.branchIDs, nil
}

func newRedisCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestDashboardAggregates(t *testing.T) {
	repo := &fakeRepo{dailySales: 1200.50, productCount: 34, cashBalance: 8800, invoiceCount: 17}
	svc := NewService(repo, NewCache(nil, 0))

	dash, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1200.50, dash.DailySales)
	require.Equal(t, int64(34), dash.TotalProducts)
	require.Equal(t, float64(8800), dash.CashBalance)
	require.Equal(t, int64(17), dash.InvoiceCount)
}

func TestDashboardPropagatesQueryFailure(t *testing.T) {
	repo := &fakeRepo{failCash: true}
	svc := NewService(repo, NewCache(nil, 0))

	_, err := svc.Dashboard(context.Background(), 1)
	require.Error(t, err)
}

func TestDashboardRejectsBadBranch(t *testing.T) {
	svc := NewService(&fakeRepo{}, NewCache(nil, 0))
	_, err := svc.Dashboard(context.Background(), 0)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestDashboardServedFromCache(t *testing.T) {
	repo := &fakeRepo{dailySales: 100}
	svc := NewService(repo, newRedisCache(t))

	first, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, float64(100), first.DailySales)
	require.Equal(t, int64(1), repo.loads.Load())

	// The second call must not hit the repository.
	repo.dailySales = 999
	second, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, float64(100), second.DailySales)
	require.Equal(t, int64(1), repo.loads.Load())
}

func TestDashboardBumpInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{dailySales: 100}
	cache := newRedisCache(t)
	svc := NewService(repo, cache)

	_, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)

	repo.dailySales = 250
	require.NoError(t, cache.Bump(context.Background()))

	dash, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, float64(250), dash.DailySales)
	require.Equal(t, int64(2), repo.loads.Load())
}

func TestWarmDashboardOverwritesCachedValue(t *testing.T) {
	repo := &fakeRepo{dailySales: 100}
	svc := NewService(repo, newRedisCache(t))

	_, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)

	repo.dailySales = 300
	require.NoError(t, svc.WarmDashboard(context.Background(), 1))

	dash, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, float64(300), dash.DailySales)
}

func TestDashboardCacheKeysPerBranch(t *testing.T) {
	repo := &fakeRepo{dailySales: 100}
	svc := NewService(repo, newRedisCache(t))

	_, err := svc.Dashboard(context.Background(), 1)
	require.NoError(t, err)

	repo.dailySales = 777
	other, err := svc.Dashboard(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, float64(777), other.DailySales)
}

func TestSalesReportValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, NewCache(nil, 0))
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.SalesReport(context.Background(), 0, from, from)
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.SalesReport(context.Background(), 1, from, from.AddDate(0, 0, -1))
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.SalesReport(context.Background(), 1, from, from.AddDate(2, 0, 0))
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestSalesReportReturnsRows(t *testing.T) {
	rows := []DailySales{
		{Date: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), InvoiceCount: 4, TotalSales: 460, TotalVAT: 60},
		{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), InvoiceCount: 2, TotalSales: 230, TotalVAT: 30},
	}
	svc := NewService(&fakeRepo{salesByDay: rows}, NewCache(nil, 0))

	got, err := svc.SalesReport(context.Background(), 1,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestBranchIDs(t *testing.T) {
	svc := NewService(&fakeRepo{branchIDs: []int64{1, 2, 5}}, NewCache(nil, 0))
	ids, err := svc.BranchIDs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 5}, ids)
}
