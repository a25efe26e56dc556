package shifts

import "time"

// Shift ties a cash safe to a user for a bounded work session. It is created
// open and transitions to closed exactly once.
type Shift struct {
	ID             int64      `json:"id"`
	BranchID       int64      `json:"branch_id"`
	SafeID         int64      `json:"safe_id"`
	UserID         int64      `json:"user_id"`
	OpeningBalance float64    `json:"opening_balance"`
	ClosingBalance *float64   `json:"closing_balance,omitempty"`
	OpenedAt       time.Time  `json:"opened_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

// IsClosed reports whether the shift has been closed.
func (s *Shift) IsClosed() bool {
	return s != nil && s.ClosedAt != nil
}
