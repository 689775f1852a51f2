package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// Publish indexes the report under the configured fixed id, then reads it back,
// refreshes the index and runs a match-all search. Each step waits for the
// previous one and the first failure stops the sequence.
func (uc *ReportUseCase) Publish(ctx context.Context, store repository.SearchRepository, report entity.CostReport) (entity.VerificationResult, error) {
	var out entity.VerificationResult
	index, id := uc.cfg.IndexName, uc.cfg.DocumentID

	uc.printPayload(report)

	res, err := store.IndexDocument(ctx, index, id, report)
	if err != nil {
		return out, &types.PhaseError{Step: string(entity.StepIndex), Err: err}
	}
	out.IndexResult = res
	out.CompletedStep = entity.StepIndex
	uc.console.Println(res)

	fetched, err := store.GetDocument(ctx, index, id)
	if err != nil {
		return out, &types.PhaseError{Step: string(entity.StepFetch), Err: err}
	}
	out.Fetched = fetched
	out.CompletedStep = entity.StepFetch
	uc.printSource(fetched)

	if uc.cfg.StrictFetch {
		if err := compareFetched(report, fetched); err != nil {
			return out, &types.PhaseError{Step: string(entity.StepFetch), Err: err}
		}
	}

	// Sem o refresh a busca pode não enxergar o documento recém-indexado
	if err := store.Refresh(ctx, index); err != nil {
		return out, &types.PhaseError{Step: string(entity.StepRefresh), Err: err}
	}
	out.CompletedStep = entity.StepRefresh

	total, hits, err := store.SearchAll(ctx, index)
	if err != nil {
		return out, &types.PhaseError{Step: string(entity.StepSearch), Err: err}
	}
	out.TotalHits = total
	out.Hits = hits
	out.CompletedStep = entity.StepSearch

	uc.console.Printf("Got %d Hits:\n", total)
	lines := lo.Map(hits, func(h entity.SearchHit, _ int) string {
		return FormatHitLine(h.Source)
	})
	for _, line := range lines {
		uc.console.Println(line)
	}

	if uc.archiveRepo != nil {
		location, err := uc.archiveRepo.PutLatest(ctx, report)
		if err != nil {
			return out, &types.PhaseError{Step: string(entity.StepArchive), Err: err}
		}
		out.CompletedStep = entity.StepArchive
		uc.console.LogInfo("Latest report mirrored to %s", location)
	}

	return out, nil
}

// FormatHitLine renders a search hit as "<timestamp> <title>: <TotalCost>".
// Missing fields print as empty strings.
func FormatHitLine(source map[string]interface{}) string {
	return fmt.Sprintf("%s %s: %s",
		sourceString(source, "timestamp"),
		sourceString(source, "title"),
		sourceString(source, "TotalCost"),
	)
}

func sourceString(source map[string]interface{}, key string) string {
	v, ok := source[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (uc *ReportUseCase) printSource(source map[string]interface{}) {
	data, err := json.Marshal(source)
	if err != nil {
		uc.console.Println(fmt.Sprint(source))
		return
	}
	uc.console.Println(string(data))
}

func compareFetched(report entity.CostReport, fetched map[string]interface{}) error {
	checks := []struct {
		field string
		want  string
	}{
		{"AccountID", report.AccountID},
		{"title", report.Title},
		{"TotalCost", report.TotalCost},
	}
	for _, c := range checks {
		if got := sourceString(fetched, c.field); got != c.want {
			return fmt.Errorf("%w: %s is %q, indexed %q", types.ErrFetchMismatch, c.field, got, c.want)
		}
	}
	return nil
}
