package repository

import (
	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

type ExportRepository interface {
	ExportReportToCSV(report entity.CostReport, summary entity.CostSummary, filename, outputDir string) (string, error)
	ExportReportToJSON(report entity.CostReport, filename, outputDir string) (string, error)
	ExportReportToPDF(report entity.CostReport, summary entity.CostSummary, filename, outputDir string) (string, error)
}
