package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostRow is the flattened form of a UsageGroup.
// Resource carries the second group key (the region), Service the first.
type CostRow struct {
	Service  string          `json:"service"`
	Resource string          `json:"resource"`
	Cost     decimal.Decimal `json:"cost"`
}

// CostSummary is the output of the cost aggregation step.
type CostSummary struct {
	Rows      []CostRow       `json:"rows"`
	Total     decimal.Decimal `json:"total"`
	TotalCost string          `json:"total_cost"`
}

// CostReport is the document persisted to the search store.
type CostReport struct {
	AccountID  string       `json:"AccountID"`
	TimePeriod TimePeriod   `json:"TimePeriod"`
	Title      string       `json:"title"`
	Category   []UsageGroup `json:"Category"`
	TotalCost  string       `json:"TotalCost"`
	Timestamp  time.Time    `json:"timestamp"`
}
