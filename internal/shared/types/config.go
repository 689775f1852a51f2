package types

// Config represents the job configuration that can be loaded from a file.
type Config struct {
	Region string `json:"region" yaml:"region" toml:"region"`

	// Search store
	ParameterName    string `json:"parameter_name" yaml:"parameter_name" toml:"parameter_name"`
	ParameterDecrypt *bool  `json:"parameter_decrypt" yaml:"parameter_decrypt" toml:"parameter_decrypt"`
	SearchHost       string `json:"search_host" yaml:"search_host" toml:"search_host"`
	SearchPort       int    `json:"search_port" yaml:"search_port" toml:"search_port"`
	SearchScheme     string `json:"search_scheme" yaml:"search_scheme" toml:"search_scheme"`
	SearchService    string `json:"search_service" yaml:"search_service" toml:"search_service"`
	IndexName        string `json:"index_name" yaml:"index_name" toml:"index_name"`
	DocumentID       string `json:"document_id" yaml:"document_id" toml:"document_id"`
	StrictFetch      bool   `json:"strict_fetch" yaml:"strict_fetch" toml:"strict_fetch"`

	// Report
	Title               string   `json:"title" yaml:"title" toml:"title"`
	Metric              string   `json:"metric" yaml:"metric" toml:"metric"`
	GroupBy             []string `json:"group_by" yaml:"group_by" toml:"group_by"`
	ExcludedRecordTypes []string `json:"excluded_record_types" yaml:"excluded_record_types" toml:"excluded_record_types"`

	// Latest-report mirror
	ArchiveBucket string `json:"archive_bucket" yaml:"archive_bucket" toml:"archive_bucket"`
	ArchiveKey    string `json:"archive_key" yaml:"archive_key" toml:"archive_key"`
}

const (
	DefaultParameterName = "es_host"
	DefaultSearchPort    = 443
	DefaultSearchScheme  = "https"
	DefaultSearchService = "es"
	DefaultIndexName     = "cost-report"
	DefaultDocumentID    = "1"
	DefaultTitle         = "MONTHLY Cost Report"
	DefaultMetric        = "BlendedCost"
	DefaultArchiveKey    = "cost-report/latest.json"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	decrypt := true
	return &Config{
		ParameterName:       DefaultParameterName,
		ParameterDecrypt:    &decrypt,
		SearchPort:          DefaultSearchPort,
		SearchScheme:        DefaultSearchScheme,
		SearchService:       DefaultSearchService,
		IndexName:           DefaultIndexName,
		DocumentID:          DefaultDocumentID,
		Title:               DefaultTitle,
		Metric:              DefaultMetric,
		GroupBy:             []string{"SERVICE", "REGION"},
		ExcludedRecordTypes: []string{"Credit", "Refund"},
		ArchiveKey:          DefaultArchiveKey,
	}
}

// Merge overlays every non-zero field of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Region != "" {
		c.Region = other.Region
	}
	if other.ParameterName != "" {
		c.ParameterName = other.ParameterName
	}
	if other.ParameterDecrypt != nil {
		v := *other.ParameterDecrypt
		c.ParameterDecrypt = &v
	}
	if other.SearchHost != "" {
		c.SearchHost = other.SearchHost
	}
	if other.SearchPort != 0 {
		c.SearchPort = other.SearchPort
	}
	if other.SearchScheme != "" {
		c.SearchScheme = other.SearchScheme
	}
	if other.SearchService != "" {
		c.SearchService = other.SearchService
	}
	if other.IndexName != "" {
		c.IndexName = other.IndexName
	}
	if other.DocumentID != "" {
		c.DocumentID = other.DocumentID
	}
	if other.StrictFetch {
		c.StrictFetch = true
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Metric != "" {
		c.Metric = other.Metric
	}
	if len(other.GroupBy) > 0 {
		c.GroupBy = other.GroupBy
	}
	if len(other.ExcludedRecordTypes) > 0 {
		c.ExcludedRecordTypes = other.ExcludedRecordTypes
	}
	if other.ArchiveBucket != "" {
		c.ArchiveBucket = other.ArchiveBucket
	}
	if other.ArchiveKey != "" {
		c.ArchiveKey = other.ArchiveKey
	}
}

// DecryptParameter reports whether the parameter store lookup is decrypted.
func (c *Config) DecryptParameter() bool {
	return c.ParameterDecrypt == nil || *c.ParameterDecrypt
}
