package handler

import (
	"context"
	"encoding/json"
	"os"

	"github.com/diillson/aws-cost-report/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-report/internal/adapter/driving/wire"
	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// Runner is the part of the report use case the handler drives.
type Runner interface {
	Run(ctx context.Context, opts usecase.RunOptions) (entity.JobResult, error)
}

// BuildFunc assembles a runner for one invocation.
type BuildFunc func(ctx context.Context) (Runner, error)

// Handler is the scheduled Lambda entry point.
type Handler struct {
	build   BuildFunc
	console types.ConsoleInterface
}

// NewHandler creates a handler that builds its runner per invocation.
func NewHandler(build BuildFunc, console types.ConsoleInterface) *Handler {
	return &Handler{build: build, console: console}
}

// DefaultBuild loads the config named by COST_REPORT_CONFIG (or the defaults)
// and wires the production adapters.
func DefaultBuild(configRepo repository.ConfigRepository, console types.ConsoleInterface) BuildFunc {
	return func(ctx context.Context) (Runner, error) {
		cfg, err := configRepo.Load(os.Getenv(config.EnvConfigPath))
		if err != nil {
			return nil, err
		}
		return wire.NewReportUseCase(cfg, console), nil
	}
}

// Handle runs one report. The event payload is ignored.
//
// Setup failures are returned so the invocation is marked failed. Failures
// while publishing to the search store are logged and swallowed.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) error {
	runner, err := h.build(ctx)
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx, usecase.RunOptions{})
	if err != nil {
		return err
	}

	if result.Failed() {
		h.console.LogError("error: cost report %s not published: %s", result.RunID, result.Err)
	}
	return nil
}
