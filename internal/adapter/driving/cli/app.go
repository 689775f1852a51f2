package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/aws-cost-report/internal/adapter/driving/wire"
	"github.com/diillson/aws-cost-report/internal/application/usecase"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
	"github.com/diillson/aws-cost-report/internal/shared/types"
	"github.com/diillson/aws-cost-report/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		console:    console,
		version:    versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "cost-report",
		Short:         "Publish the month-to-date AWS cost report to OpenSearch",
		Version:       version.FormatVersion(),
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Report version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("index", "", "Search index to publish to (overrides config)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for local report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"json"}, "Local report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Build and print the report without publishing it")
	rootCmd.PersistentFlags().Bool("strict-fetch", false, "Fail when the fetched document differs from the indexed report")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	indexName, _ := app.rootCmd.Flags().GetString("index")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")
	strictFetch, _ := app.rootCmd.Flags().GetBool("strict-fetch")

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile:  configFile,
		IndexName:   indexName,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		DryRun:      dryRun,
		StrictFetch: strictFetch,
	}, nil
}

// loadConfig carrega o arquivo de configuração e aplica as flags por cima.
func (app *CLIApp) loadConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg, err := app.configRepo.Load(args.ConfigFile)
	if err != nil {
		return nil, err
	}
	if args.IndexName != "" {
		cfg.IndexName = args.IndexName
	}
	if args.StrictFetch {
		cfg.StrictFetch = true
	}
	return cfg, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	cfg, err := app.loadConfig(cliArgs)
	if err != nil {
		return err
	}

	reportUseCase := wire.NewReportUseCase(cfg, app.console)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := reportUseCase.Run(ctx, usecase.RunOptions{DryRun: cliArgs.DryRun})
	if err != nil {
		return err
	}

	reportUseCase.RenderBreakdown(result.Summary)
	reportUseCase.ExportReport(result, cliArgs.ReportName, cliArgs.ReportType, cliArgs.Dir)

	if result.Failed() {
		return result.Err
	}
	return nil
}
