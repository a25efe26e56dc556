package zatca

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/google/uuid"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
	"github.com/meridian-pos/meridian-pos/internal/sales"
)

// InvoiceReader loads committed invoices for formatting.
type InvoiceReader interface {
	GetInvoice(ctx context.Context, id int64) (*sales.Invoice, error)
}

// Service formats invoices for the tax authority. This is a stub: the XML is
// generated and a submission row recorded, but nothing is sent outbound.
type Service struct {
	invoices InvoiceReader
	repo     Repository
	newUUID  func() string
}

// NewService builds Service.
func NewService(invoices InvoiceReader, repo Repository) *Service {
	return &Service{
		invoices: invoices,
		repo:     repo,
		newUUID:  func() string { return uuid.NewString() },
	}
}

// SubmitResult carries the submission identifiers back to the caller.
type SubmitResult struct {
	SubmissionID int64
	UUID         string
	XML          []byte
}

// SubmitInvoice loads the invoice, renders the UBL document and records the
// submission. Unknown invoices surface as not found.
func (s *Service) SubmitInvoice(ctx context.Context, invoiceID int64) (*SubmitResult, error) {
	if invoiceID <= 0 {
		return nil, fmt.Errorf("%w: invoice id must be positive", httpx.ErrValidation)
	}
	invoice, err := s.invoices.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	docUUID := s.newUUID()
	doc := UBLInvoice{
		InvoiceID:   invoice.ID,
		UUID:        docUUID,
		IssueDate:   invoice.InvoiceDate.Format("2006-01-02"),
		TotalAmount: fmt.Sprintf("%.2f", invoice.TotalAmount),
		VATAmount:   fmt.Sprintf("%.2f", invoice.VATAmount),
	}
	payload, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("zatca: marshal invoice %d: %w", invoiceID, err)
	}
	payload = append([]byte(xml.Header), payload...)

	subID, err := s.repo.Insert(ctx, Submission{
		InvoiceID: invoice.ID,
		UUID:      docUUID,
		Status:    StatusSubmitted,
	})
	if err != nil {
		return nil, fmt.Errorf("zatca: record submission: %w", err)
	}
	return &SubmitResult{SubmissionID: subID, UUID: docUUID, XML: payload}, nil
}
