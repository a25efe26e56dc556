package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportWarmup precomputes dashboard aggregates into the cache.
	TaskReportWarmup = "report:warmup"
)

// ReportWarmupPayload selects which branches to warm. A zero BranchID warms
// every known branch.
type ReportWarmupPayload struct {
	BranchID int64 `json:"branch_id"`
}

// NewReportWarmupTask constructs an Asynq task.
func NewReportWarmupTask(payload ReportWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportWarmup, data), nil
}
