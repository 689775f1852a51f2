package service

import (
	"time"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// DateLayout is the billing API date format.
const DateLayout = "2006-01-02"

// CurrentBillingWindow returns the month-to-date window for a run at now.
// The start is the first day of the month containing the previous day, so a run
// on the 1st reports the whole previous month instead of an empty interval.
func CurrentBillingWindow(now time.Time) entity.TimePeriod {
	end := now.UTC()
	prev := end.AddDate(0, 0, -1)
	start := time.Date(prev.Year(), prev.Month(), 1, 0, 0, 0, 0, time.UTC)

	return entity.TimePeriod{
		Start: start.Format(DateLayout),
		End:   end.Format(DateLayout),
	}
}
