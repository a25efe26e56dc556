package sales

// CreateInvoiceRequest is the payload accepted by POST /api/sales/invoice.
type CreateInvoiceRequest struct {
	BranchID      int64                `json:"branchId" validate:"required,gt=0"`
	CustomerID    int64                `json:"customerId" validate:"required,gt=0"`
	PaymentMethod PaymentMethod        `json:"paymentMethod" validate:"required,oneof=CASH CARD CREDIT"`
	TotalAmount   float64              `json:"totalAmount" validate:"gte=0"`
	VATAmount     float64              `json:"vatAmount" validate:"gte=0"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

// InvoiceItemRequest is one sold line in a create request.
type InvoiceItemRequest struct {
	ProductID int64   `json:"productId" validate:"required,gt=0"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
	LineTotal float64 `json:"lineTotal" validate:"gte=0"`
}
