package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "coauthor-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScholarConfig holds settings for the scholar profile service client.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional key for authenticated access to the profile
	// service proxy.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email is sent as the mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// RequestsPerSecond caps the request rate against the service
	// (default 2).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// MaxRetries is the number of retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ReportConfig holds settings for the coauthor report stage.
type ReportConfig struct {
	// ScholarID is the author identifier to report on.
	ScholarID string `json:"scholar_id" yaml:"scholar_id"`

	// YearsBack is the collaboration window in years (default 2).
	// 0 means unbounded: all publications are considered.
	YearsBack int `json:"years_back" yaml:"years_back"`

	// OutputPath is the report file path (default "coauthors.csv").
	// An empty path skips the file write.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// NamesOnly selects the reduced one-name-per-line projection
	// instead of the "{name}, {year}" rows.
	NamesOnly bool `json:"names_only" yaml:"names_only"`
}

// Config groups all stage configurations.
type Config struct {
	Scholar ScholarConfig `json:"scholar" yaml:"scholar"`
	Report  ReportConfig  `json:"report" yaml:"report"`
}
