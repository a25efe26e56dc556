package shifts

import (
	"context"
	"fmt"

	"github.com/meridian-pos/meridian-pos/internal/platform/httpx"
)

// OpenShiftRequest is the payload accepted by POST /api/shifts/open.
type OpenShiftRequest struct {
	BranchID       int64   `json:"branchId" validate:"required,gt=0"`
	SafeID         int64   `json:"safeId" validate:"required,gt=0"`
	UserID         int64   `json:"userId" validate:"required,gt=0"`
	OpeningBalance float64 `json:"openingBalance" validate:"gte=0"`
}

// Service wraps shift lifecycle rules.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Open creates a new open shift for the given safe. At most one shift per
// safe may be open at a time.
func (s *Service) Open(ctx context.Context, req OpenShiftRequest) (int64, error) {
	if req.BranchID <= 0 || req.SafeID <= 0 || req.UserID <= 0 {
		return 0, fmt.Errorf("%w: branch, safe and user are required", httpx.ErrValidation)
	}
	if req.OpeningBalance < 0 {
		return 0, fmt.Errorf("%w: opening balance must not be negative", httpx.ErrValidation)
	}
	return s.repo.Insert(ctx, Shift{
		BranchID:       req.BranchID,
		SafeID:         req.SafeID,
		UserID:         req.UserID,
		OpeningBalance: req.OpeningBalance,
	})
}

// Close transitions an open shift to closed, recording the counted balance.
// Closing an already-closed shift is rejected; the transition happens once.
func (s *Service) Close(ctx context.Context, shiftID int64, closingBalance float64) error {
	if shiftID <= 0 {
		return fmt.Errorf("%w: shift id must be positive", httpx.ErrValidation)
	}
	if closingBalance < 0 {
		return fmt.Errorf("%w: closing balance must not be negative", httpx.ErrValidation)
	}
	return s.repo.Close(ctx, shiftID, closingBalance)
}

// Get returns a shift by id.
func (s *Service) Get(ctx context.Context, shiftID int64) (*Shift, error) {
	if shiftID <= 0 {
		return nil, fmt.Errorf("%w: shift id must be positive", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, shiftID)
}
