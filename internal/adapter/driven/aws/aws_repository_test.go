package aws

import (
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

func TestBuildCostAndUsageInput(t *testing.T) {
	input := buildCostAndUsageInput(entity.BillingQuery{
		AccountID:           "123456789012",
		Window:              entity.TimePeriod{Start: "2026-10-01", End: "2026-10-19"},
		Metric:              "BlendedCost",
		GroupBy:             []string{"SERVICE", "REGION"},
		ExcludedRecordTypes: []string{"Credit", "Refund"},
	})

	if aws.ToString(input.TimePeriod.Start) != "2026-10-01" || aws.ToString(input.TimePeriod.End) != "2026-10-19" {
		t.Fatalf("TimePeriod = %s..%s", aws.ToString(input.TimePeriod.Start), aws.ToString(input.TimePeriod.End))
	}
	if input.Granularity != ceTypes.GranularityMonthly {
		t.Fatalf("Granularity = %s, want MONTHLY", input.Granularity)
	}
	if !reflect.DeepEqual(input.Metrics, []string{"BlendedCost"}) {
		t.Fatalf("Metrics = %v", input.Metrics)
	}
	if len(input.GroupBy) != 2 || aws.ToString(input.GroupBy[0].Key) != "SERVICE" || aws.ToString(input.GroupBy[1].Key) != "REGION" {
		t.Fatalf("GroupBy = %+v", input.GroupBy)
	}
	if input.GroupBy[0].Type != ceTypes.GroupDefinitionTypeDimension {
		t.Fatalf("GroupBy type = %s, want DIMENSION", input.GroupBy[0].Type)
	}

	and := input.Filter.And
	if len(and) != 2 {
		t.Fatalf("Filter.And has %d expressions, want 2", len(and))
	}
	if and[0].Dimensions.Key != ceTypes.DimensionLinkedAccount || !reflect.DeepEqual(and[0].Dimensions.Values, []string{"123456789012"}) {
		t.Fatalf("account filter = %+v", and[0].Dimensions)
	}
	not := and[1].Not
	if not == nil || not.Dimensions.Key != ceTypes.DimensionRecordType || !reflect.DeepEqual(not.Dimensions.Values, []string{"Credit", "Refund"}) {
		t.Fatalf("record type filter = %+v", and[1])
	}
}

func TestBuildCostAndUsageInput_NoExclusions(t *testing.T) {
	input := buildCostAndUsageInput(entity.BillingQuery{
		AccountID: "1",
		Window:    entity.TimePeriod{Start: "2026-10-01", End: "2026-10-19"},
		Metric:    "BlendedCost",
	})
	if input.Filter.Dimensions == nil || len(input.Filter.And) != 0 {
		t.Fatalf("Filter = %+v, want a single account expression", input.Filter)
	}
}

func TestToBillingResponse(t *testing.T) {
	out := &costexplorer.GetCostAndUsageOutput{
		ResultsByTime: []ceTypes.ResultByTime{{
			TimePeriod: &ceTypes.DateInterval{Start: aws.String("2026-10-01"), End: aws.String("2026-10-19")},
			Estimated:  true,
			Groups: []ceTypes.Group{
				{
					Keys: []string{"Amazon EC2", "us-east-1"},
					Metrics: map[string]ceTypes.MetricValue{
						"BlendedCost": {Amount: aws.String("12.345"), Unit: aws.String("USD")},
					},
				},
				{
					Keys:    []string{"AWS Lambda", "eu-west-1"},
					Metrics: map[string]ceTypes.MetricValue{"BlendedCost": {}},
				},
			},
		}},
	}

	resp := toBillingResponse(out)
	if len(resp.ResultsByTime) != 1 {
		t.Fatalf("ResultsByTime = %d, want 1", len(resp.ResultsByTime))
	}
	bucket := resp.ResultsByTime[0]
	if bucket.TimePeriod.Start != "2026-10-01" || bucket.TimePeriod.End != "2026-10-19" || !bucket.Estimated {
		t.Fatalf("bucket = %+v", bucket)
	}
	if len(bucket.Groups) != 2 {
		t.Fatalf("Groups = %d, want 2", len(bucket.Groups))
	}
	if got := bucket.Groups[0].Metrics["BlendedCost"]; got.Amount != "12.345" || got.Unit != "USD" {
		t.Fatalf("Groups[0] metric = %+v", got)
	}
	if _, ok := bucket.Groups[1].Metrics["BlendedCost"]; ok {
		t.Fatal("nil amount should not produce a metric entry")
	}
}

func TestMergeResults(t *testing.T) {
	period := entity.TimePeriod{Start: "2026-10-01", End: "2026-10-19"}
	page := func(keys ...string) entity.BillingResponse {
		var groups []entity.UsageGroup
		for _, k := range keys {
			groups = append(groups, entity.UsageGroup{Keys: []string{k, "us-east-1"}})
		}
		return entity.BillingResponse{ResultsByTime: []entity.ResultByTime{{TimePeriod: period, Groups: groups}}}
	}

	merged := mergeResults(entity.BillingResponse{}, page("EC2", "S3"))
	merged = mergeResults(merged, page("Lambda"))

	if len(merged.ResultsByTime) != 1 {
		t.Fatalf("ResultsByTime = %d, want 1", len(merged.ResultsByTime))
	}
	var services []string
	for _, g := range merged.ResultsByTime[0].Groups {
		services = append(services, g.Keys[0])
	}
	if !reflect.DeepEqual(services, []string{"EC2", "S3", "Lambda"}) {
		t.Fatalf("services = %v", services)
	}
}

func TestNewAWSRepository_RegionBeforeLoad(t *testing.T) {
	repo := NewAWSRepository("eu-west-1")
	if repo.GetRegion() != "eu-west-1" {
		t.Fatalf("GetRegion = %q, want eu-west-1", repo.GetRegion())
	}
}
