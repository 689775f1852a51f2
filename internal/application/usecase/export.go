package usecase

import (
	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// ExportReport writes the report to local files, one per requested type.
// Failures are logged and do not stop the remaining exports.
func (uc *ReportUseCase) ExportReport(result entity.JobResult, reportName string, reportTypes []string, dir string) {
	if uc.exportRepo == nil || reportName == "" || len(reportTypes) == 0 {
		return
	}

	for _, reportType := range reportTypes {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportReportToCSV(result.Report, result.Summary, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportReportToJSON(result.Report, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportReportToPDF(result.Report, result.Summary, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored", reportType)
		}
	}
}

// RenderBreakdown prints the per-group cost table.
func (uc *ReportUseCase) RenderBreakdown(summary entity.CostSummary) {
	table := uc.console.CreateTable()
	table.AddColumn("Service")
	table.AddColumn("Resource")
	table.AddColumn("Cost")

	for _, row := range summary.Rows {
		table.AddRow(row.Service, row.Resource, row.Cost.StringFixed(4))
	}
	table.AddRow("Total", "", summary.TotalCost)

	uc.console.Print(table.Render())
}
