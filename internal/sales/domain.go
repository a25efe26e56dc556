package sales

import "time"

// PaymentMethod identifies how an invoice was settled.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodCredit PaymentMethod = "CREDIT"
)

// Invoice is a committed sales invoice header with its lines.
type Invoice struct {
	ID            int64         `json:"id"`
	BranchID      int64         `json:"branch_id"`
	CustomerID    int64         `json:"customer_id"`
	InvoiceDate   time.Time     `json:"invoice_date"`
	TotalAmount   float64       `json:"total_amount"`
	VATAmount     float64       `json:"vat_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Lines         []InvoiceLine `json:"lines,omitempty"`
}

// InvoiceLine is a single sold item belonging to exactly one invoice.
type InvoiceLine struct {
	ID        int64   `json:"id"`
	InvoiceID int64   `json:"invoice_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}
