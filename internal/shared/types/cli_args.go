package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	IndexName   string
	ReportName  string
	ReportType  []string
	Dir         string
	DryRun      bool
	StrictFetch bool
}
