package service

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/shopspring/decimal"
)

// TotalCostPlaces is the number of decimal places kept on the report total.
const TotalCostPlaces = 3

// AggregateCosts flattens the first time bucket of a billing response into one
// CostRow per usage group, in source order, and sums the amounts of metric.
// Rounding happens once, on the total.
func AggregateCosts(resp entity.BillingResponse, metric string) (entity.CostSummary, error) {
	if len(resp.ResultsByTime) == 0 {
		return entity.CostSummary{}, types.ErrNoResultsByTime
	}

	groups := resp.ResultsByTime[0].Groups
	rows := make([]entity.CostRow, 0, len(groups))
	total := decimal.Zero

	for i, group := range groups {
		row, err := toCostRow(group, metric)
		if err != nil {
			return entity.CostSummary{}, &types.GroupError{Index: i, Err: err}
		}
		rows = append(rows, row)
		total = total.Add(row.Cost)
	}

	rounded := total.RoundBank(TotalCostPlaces)
	return entity.CostSummary{
		Rows:      rows,
		Total:     rounded,
		TotalCost: FormatTotalCost(rounded),
	}, nil
}

func toCostRow(group entity.UsageGroup, metric string) (entity.CostRow, error) {
	if len(group.Keys) != 2 {
		return entity.CostRow{}, fmt.Errorf("%w: got %d", types.ErrMalformedGroup, len(group.Keys))
	}

	value, ok := group.Metrics[metric]
	if !ok || value.Amount == "" {
		return entity.CostRow{}, fmt.Errorf("%w %s", types.ErrMissingMetric, metric)
	}

	cost, err := decimal.NewFromString(value.Amount)
	if err != nil {
		return entity.CostRow{}, fmt.Errorf("%w: %q", types.ErrInvalidAmount, value.Amount)
	}

	return entity.CostRow{
		Service:  group.Keys[0],
		Resource: group.Keys[1],
		Cost:     cost,
	}, nil
}

// FormatTotalCost renders a total as "<amount> usd", rounded to TotalCostPlaces
// with trailing zeros dropped. Whole amounts keep one fractional digit ("12.0 usd").
func FormatTotalCost(total decimal.Decimal) string {
	s := total.RoundBank(TotalCostPlaces).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + " usd"
}
