package zatca

import (
	"encoding/xml"
	"time"
)

// SubmissionStatus tracks the lifecycle of a tax-authority submission.
type SubmissionStatus string

const (
	// StatusSubmitted is the only status the stub produces; there is no
	// outbound call yet, so nothing ever moves to accepted or rejected.
	StatusSubmitted SubmissionStatus = "SUBMITTED"
)

// Submission is the stored record of one formatted invoice submission.
type Submission struct {
	ID          int64            `json:"id"`
	InvoiceID   int64            `json:"invoice_id"`
	UUID        string           `json:"uuid"`
	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// UBLInvoice is the simplified UBL 2.1 shaped document the authority expects.
type UBLInvoice struct {
	XMLName     xml.Name `xml:"urn:oasis:names:specification:ubl:schema:xsd:Invoice-2 Invoice"`
	InvoiceID   int64    `xml:"InvoiceID"`
	UUID        string   `xml:"UUID"`
	IssueDate   string   `xml:"IssueDate"`
	TotalAmount string   `xml:"TotalAmount"`
	VATAmount   string   `xml:"VATAmount"`
}
