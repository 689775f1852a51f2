package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/domain/service"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// SearchRepositoryFactory builds a search store client for a resolved host.
type SearchRepositoryFactory func(ctx context.Context, host string) (repository.SearchRepository, error)

// RunOptions tweaks a single run.
type RunOptions struct {
	DryRun bool
}

// ReportUseCase runs the monthly cost report job.
type ReportUseCase struct {
	awsRepo       repository.AWSRepository
	searchFactory SearchRepositoryFactory
	archiveRepo   repository.ArchiveRepository
	exportRepo    repository.ExportRepository
	console       types.ConsoleInterface
	cfg           *types.Config

	now      func() time.Time
	newRunID func() string
}

// Option configures optional collaborators of the use case.
type Option func(*ReportUseCase)

// WithArchive mirrors each published report to object storage.
func WithArchive(repo repository.ArchiveRepository) Option {
	return func(uc *ReportUseCase) { uc.archiveRepo = repo }
}

// WithExport enables local report files.
func WithExport(repo repository.ExportRepository) Option {
	return func(uc *ReportUseCase) { uc.exportRepo = repo }
}

// WithClock overrides the wall clock (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *ReportUseCase) { uc.now = now }
}

// WithRunID overrides the run id generator (tests).
func WithRunID(gen func() string) Option {
	return func(uc *ReportUseCase) { uc.newRunID = gen }
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	awsRepo repository.AWSRepository,
	searchFactory SearchRepositoryFactory,
	console types.ConsoleInterface,
	cfg *types.Config,
	opts ...Option,
) *ReportUseCase {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	uc := &ReportUseCase{
		awsRepo:       awsRepo,
		searchFactory: searchFactory,
		console:       console,
		cfg:           cfg,
		now:           time.Now,
		newRunID:      func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run executes one invocation of the job.
//
// Any error in the setup phase (identity, parameter lookup, client construction,
// billing query, aggregation, report construction) is returned as err. Failures
// while publishing are reported through JobResult.Status and JobResult.Err with
// a nil err, so the caller decides whether to swallow them.
func (uc *ReportUseCase) Run(ctx context.Context, opts RunOptions) (entity.JobResult, error) {
	startedAt := uc.now().UTC()
	result := entity.JobResult{
		RunID:     uc.newRunID(),
		StartedAt: startedAt,
	}
	uc.console.LogInfo("Starting cost report run %s", result.RunID)

	// Fase de preparação: qualquer falha aqui aborta a execução
	accountID, err := uc.awsRepo.GetAccountID(ctx)
	if err != nil {
		return result, fmt.Errorf("resolving account id: %w", err)
	}

	window := service.CurrentBillingWindow(startedAt)

	var store repository.SearchRepository
	if !opts.DryRun {
		store, err = uc.connectSearch(ctx)
		if err != nil {
			return result, err
		}
	}

	status := uc.console.Status("Querying cost and usage...")
	resp, err := uc.awsRepo.GetCostAndUsage(ctx, entity.BillingQuery{
		AccountID:           accountID,
		Window:              window,
		Metric:              uc.cfg.Metric,
		GroupBy:             uc.cfg.GroupBy,
		ExcludedRecordTypes: uc.cfg.ExcludedRecordTypes,
	})
	status.Stop()
	if err != nil {
		return result, fmt.Errorf("querying cost and usage for %s..%s: %w", window.Start, window.End, err)
	}

	summary, err := service.AggregateCosts(resp, uc.cfg.Metric)
	if err != nil {
		return result, fmt.Errorf("aggregating costs: %w", err)
	}

	report, err := service.BuildReport(service.ReportInput{
		AccountID:  accountID,
		TimePeriod: resp.ResultsByTime[0].TimePeriod,
		Title:      uc.cfg.Title,
		Groups:     resp.ResultsByTime[0].Groups,
		TotalCost:  summary.TotalCost,
		Timestamp:  startedAt,
	})
	if err != nil {
		return result, fmt.Errorf("building report: %w", err)
	}

	result.Report = report
	result.Summary = summary

	if opts.DryRun {
		uc.printPayload(report)
		result.Status = entity.JobDryRun
		result.FinishedAt = uc.now().UTC()
		return result, nil
	}

	// Fase de publicação: falhas são registradas no resultado
	verification, err := uc.Publish(ctx, store, report)
	result.Verification = verification
	result.FinishedAt = uc.now().UTC()
	if err != nil {
		result.Status = entity.JobPersistenceFailed
		result.Err = err
		return result, nil
	}

	result.Status = entity.JobSucceeded
	uc.console.LogSuccess("Cost report %s published to %s/%s (%s)", result.RunID, uc.cfg.IndexName, uc.cfg.DocumentID, report.TotalCost)
	return result, nil
}

// connectSearch resolves the search host and builds the store client.
func (uc *ReportUseCase) connectSearch(ctx context.Context) (repository.SearchRepository, error) {
	host := uc.cfg.SearchHost
	if host == "" {
		var err error
		host, err = uc.awsRepo.GetParameter(ctx, uc.cfg.ParameterName, uc.cfg.DecryptParameter())
		if err != nil {
			return nil, fmt.Errorf("reading parameter %s: %w", uc.cfg.ParameterName, err)
		}
	}
	if host == "" {
		return nil, types.ErrNoSearchHost
	}

	store, err := uc.searchFactory(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("creating search client for %s: %w", host, err)
	}
	return store, nil
}

func (uc *ReportUseCase) printPayload(report entity.CostReport) {
	payload, err := json.Marshal(report)
	if err != nil {
		uc.console.LogWarning("Could not encode payload: %s", err)
		return
	}
	uc.console.Println(string(payload))
}
