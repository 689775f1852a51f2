// Package wire connects the driven adapters to the report use case.
package wire

import (
	awsadapter "github.com/diillson/aws-cost-report/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-report/internal/adapter/driven/search"
	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// NewReportUseCase builds a use case backed by the real AWS and OpenSearch adapters.
// Nothing is contacted until Run is called.
func NewReportUseCase(cfg *types.Config, console types.ConsoleInterface) *usecase.ReportUseCase {
	awsRepo := awsadapter.NewAWSRepository(cfg.Region)

	opts := []usecase.Option{
		usecase.WithExport(export.NewExportRepository()),
	}
	if cfg.ArchiveBucket != "" {
		opts = append(opts, usecase.WithArchive(awsadapter.NewArchiveRepository(awsRepo, cfg.ArchiveBucket, cfg.ArchiveKey)))
	}

	return usecase.NewReportUseCase(
		awsRepo,
		search.NewSignedFactory(awsRepo.Config, cfg),
		console,
		cfg,
		opts...,
	)
}
