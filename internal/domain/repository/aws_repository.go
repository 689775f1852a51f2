package repository

import (
	"context"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// AWSRepository defines the AWS API calls the report job depends on.
type AWSRepository interface {
	// Identity
	GetAccountID(ctx context.Context) (string, error)
	GetRegion() string

	// Billing
	GetCostAndUsage(ctx context.Context, query entity.BillingQuery) (entity.BillingResponse, error)

	// Parameter store
	GetParameter(ctx context.Context, name string, decrypt bool) (string, error)
}

// ArchiveRepository mirrors the latest report to object storage.
type ArchiveRepository interface {
	PutLatest(ctx context.Context, report entity.CostReport) (string, error)
}
