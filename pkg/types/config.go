package types

import "time"

// HTTPConfig holds shared HTTP settings for the optional remote paper
// search backend.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-assistant/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScanConfig holds settings for the source-file walk performed by the
// technology detector and file counter.
type ScanConfig struct {
	// Extensions lists the file extensions counted as source files
	// (default ".py").
	Extensions []string `json:"extensions" yaml:"extensions"`

	// MaxDepth bounds the directory walk below the project root
	// (default 12). Zero or negative uses the default.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`

	// ExcludeDirs lists directory names skipped during the walk, in
	// addition to the built-in set (.git, venv, __pycache__, ...).
	ExcludeDirs []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty"`
}

// QueryConfig holds settings for research query generation.
type QueryConfig struct {
	// MaxQueries caps the number of generated search queries (default 5).
	MaxQueries int `json:"max_queries" yaml:"max_queries"`

	// MaxPapers caps the number of papers included in a report (default 5).
	MaxPapers int `json:"max_papers" yaml:"max_papers"`
}

// ReportFormat selects the report output format.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
	ReportYAML ReportFormat = "yaml"
)

// ReportConfig holds settings for report rendering.
type ReportConfig struct {
	// Format selects the output format: text, json, or yaml.
	Format ReportFormat `json:"format" yaml:"format"`

	// OutputDir is the directory where bare report and analysis file
	// names are placed (default "output/reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// RemoteConfig holds settings for the optional remote paper-search
// backend. Disabled by default; the static catalog serves the report path.
type RemoteConfig struct {
	HTTPConfig `yaml:",inline"`

	// Enabled turns the remote backend on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// APIToken is an optional bearer token for the remote API.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`

	// MaxRetries is the retry budget for rate-limited requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HistoryConfig holds settings for the analysis history store.
type HistoryConfig struct {
	// Dir is the base directory for the history database
	// (default "history").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AssistantConfig groups all stage configurations.
type AssistantConfig struct {
	Scan    ScanConfig    `json:"scan" yaml:"scan"`
	Query   QueryConfig   `json:"query" yaml:"query"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Remote  RemoteConfig  `json:"remote" yaml:"remote"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// DefaultConfig returns the built-in configuration used when no config
// file overrides it.
func DefaultConfig() AssistantConfig {
	return AssistantConfig{
		Scan: ScanConfig{
			Extensions: []string{".py"},
			MaxDepth:   12,
		},
		Query: QueryConfig{
			MaxQueries: 5,
			MaxPapers:  5,
		},
		Report: ReportConfig{
			Format:    ReportText,
			OutputDir: "output/reports",
		},
		Remote: RemoteConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "research-assistant/0.1",
			},
			MaxRetries: 3,
		},
		History: HistoryConfig{
			Dir:        "history",
			MaxResults: 20,
		},
	}
}
