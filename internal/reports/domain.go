package reports

import "time"

// Dashboard aggregates today's activity for one branch.
type Dashboard struct {
	DailySales    float64 `json:"dailySales"`
	TotalProducts int64   `json:"totalProducts"`
	CashBalance   float64 `json:"cashBalance"`
	InvoiceCount  int64   `json:"invoiceCount"`
}

// DailySales is one row of the date-range sales report.
type DailySales struct {
	Date         time.Time `json:"date"`
	InvoiceCount int64     `json:"invoiceCount"`
	TotalSales   float64   `json:"totalSales"`
	TotalVAT     float64   `json:"totalVat"`
}
