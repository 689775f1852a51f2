package repository

import (
	"context"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// SearchRepository is the document store the report is published to.
// Calls are made strictly in sequence by the use case.
type SearchRepository interface {
	IndexDocument(ctx context.Context, index, id string, doc interface{}) (string, error)
	GetDocument(ctx context.Context, index, id string) (map[string]interface{}, error)
	Refresh(ctx context.Context, index string) error
	SearchAll(ctx context.Context, index string) (int, []entity.SearchHit, error)
}
