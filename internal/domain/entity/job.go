package entity

import "time"

// JobStatus is the outcome of a single report run.
type JobStatus string

const (
	JobSucceeded         JobStatus = "succeeded"
	JobPersistenceFailed JobStatus = "persistence_failed"
	JobDryRun            JobStatus = "dry_run"
)

// JobResult is what a run hands back to its driver. Err is set only when
// Status is JobPersistenceFailed.
type JobResult struct {
	RunID        string             `json:"run_id"`
	Status       JobStatus          `json:"status"`
	Report       CostReport         `json:"report"`
	Summary      CostSummary        `json:"summary"`
	Verification VerificationResult `json:"verification"`
	StartedAt    time.Time          `json:"started_at"`
	FinishedAt   time.Time          `json:"finished_at"`
	Err          error              `json:"-"`
}

// Failed reports whether the persistence phase stopped early.
func (r JobResult) Failed() bool {
	return r.Status == JobPersistenceFailed
}
