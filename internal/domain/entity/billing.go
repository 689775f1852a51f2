package entity

// MetricValue is a single metric amount as returned by the billing API.
// Amount keeps the API's decimal string untouched.
type MetricValue struct {
	Amount string `json:"Amount"`
	Unit   string `json:"Unit,omitempty"`
}

// UsageGroup is one grouped row of a billing result: Keys holds the group-by
// values in query order (service, region).
type UsageGroup struct {
	Keys    []string               `json:"Keys"`
	Metrics map[string]MetricValue `json:"Metrics"`
}

// TimePeriod is a billing interval. Start is inclusive, End is exclusive.
type TimePeriod struct {
	Start string `json:"Start"`
	End   string `json:"End"`
}

// ResultByTime is a single time bucket of a billing response.
type ResultByTime struct {
	TimePeriod TimePeriod   `json:"TimePeriod"`
	Groups     []UsageGroup `json:"Groups"`
	Estimated  bool         `json:"Estimated,omitempty"`
}

// BillingResponse is the subset of a cost-and-usage response the job consumes.
type BillingResponse struct {
	ResultsByTime []ResultByTime `json:"ResultsByTime"`
}

// BillingQuery describes the grouped and filtered cost query issued each run.
type BillingQuery struct {
	AccountID           string
	Window              TimePeriod
	Metric              string
	GroupBy             []string
	ExcludedRecordTypes []string
}
