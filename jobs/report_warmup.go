package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"
)

// ReportService is the slice of the reports service the warmup job needs.
type ReportService interface {
	BranchIDs(ctx context.Context) ([]int64, error)
	WarmDashboard(ctx context.Context, branchID int64) error
}

// ReportWarmupJob pre-populates the dashboard cache so the first request of
// the day does not pay for four aggregate queries.
type ReportWarmupJob struct {
	Reports ReportService
	Logger  *slog.Logger
}

// NewReportWarmupJob wires dependencies for the warmup handler.
func NewReportWarmupJob(svc ReportService, logger *slog.Logger) *ReportWarmupJob {
	return &ReportWarmupJob{Reports: svc, Logger: logger}
}

// Handle processes report warmup tasks.
func (j *ReportWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Reports == nil {
		return errors.New("report warmup: handler not configured")
	}
	var payload ReportWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	branches := []int64{payload.BranchID}
	if payload.BranchID == 0 {
		var err error
		branches, err = j.Reports.BranchIDs(ctx)
		if err != nil {
			return err
		}
	}

	var failed int
	for _, branchID := range branches {
		if err := j.Reports.WarmDashboard(ctx, branchID); err != nil {
			failed++
			if j.Logger != nil {
				j.Logger.Warn("dashboard warmup failed", slog.Int64("branch_id", branchID), slog.Any("error", err))
			}
		}
	}
	if failed == len(branches) && len(branches) > 0 {
		return errors.New("report warmup: every branch failed")
	}
	return nil
}
