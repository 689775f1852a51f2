package service

import (
	"fmt"
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// ReportInput carries everything BuildReport needs.
type ReportInput struct {
	AccountID  string
	TimePeriod entity.TimePeriod
	Title      string
	Groups     []entity.UsageGroup
	TotalCost  string
	Timestamp  time.Time
}

// BuildReport assembles the document that gets persisted. It does no I/O.
func BuildReport(in ReportInput) (entity.CostReport, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s", types.ErrMissingReportField, field)
	}

	switch {
	case in.AccountID == "":
		return entity.CostReport{}, missing("AccountID")
	case in.TimePeriod.Start == "" || in.TimePeriod.End == "":
		return entity.CostReport{}, missing("TimePeriod")
	case in.Title == "":
		return entity.CostReport{}, missing("title")
	case in.TotalCost == "":
		return entity.CostReport{}, missing("TotalCost")
	case in.Timestamp.IsZero():
		return entity.CostReport{}, missing("timestamp")
	}

	category := make([]entity.UsageGroup, len(in.Groups))
	copy(category, in.Groups)

	return entity.CostReport{
		AccountID:  in.AccountID,
		TimePeriod: in.TimePeriod,
		Title:      in.Title,
		Category:   category,
		TotalCost:  in.TotalCost,
		Timestamp:  in.Timestamp.UTC(),
	}, nil
}
