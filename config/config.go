package config

import "fmt"

// Config represents the core logbox configuration
type Config struct {
	Timestamp TimestampConfig `mapstructure:"timestamp"`
	Stats     StatsConfig     `mapstructure:"stats"`
	Fetch     FetchConfig     `mapstructure:"fetch"`
}

// TimestampConfig configures how record instants are located
type TimestampConfig struct {
	Field string `mapstructure:"field"` // Dotted path to the record timestamp (default: "timestamp")
}

// StatsConfig configures which fields the statistics report tallies
type StatsConfig struct {
	ResourceField string `mapstructure:"resource_field"` // Histogram of resource types
	SeverityField string `mapstructure:"severity_field"` // Histogram of severities
	AccountField  string `mapstructure:"account_field"`  // Histogram of acting accounts
}

// FetchConfig configures object-store downloads
type FetchConfig struct {
	Bucket               string `mapstructure:"bucket"`                  // Default bucket when -b is omitted
	CredentialsFile      string `mapstructure:"credentials_file"`        // Service account key file (empty = ambient credentials)
	MaxRequestsPerMinute int    `mapstructure:"max_requests_per_minute"` // Download pacing, 0 = unpaced
}

// Default field paths for the log platform's export schema
const (
	DefaultTimestampField = "timestamp"
	DefaultResourceField  = "resource.type"
	DefaultSeverityField  = "severity"
	DefaultAccountField   = "protoPayload.authenticationInfo.principalEmail"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// GetTimestampField returns the timestamp field path (default: "timestamp")
func (c *Config) GetTimestampField() string {
	if c.Timestamp.Field == "" {
		return DefaultTimestampField
	}
	return c.Timestamp.Field
}

// GetResourceField returns the resource-type histogram field path
func (c *Config) GetResourceField() string {
	if c.Stats.ResourceField == "" {
		return DefaultResourceField
	}
	return c.Stats.ResourceField
}

// GetSeverityField returns the severity histogram field path
func (c *Config) GetSeverityField() string {
	if c.Stats.SeverityField == "" {
		return DefaultSeverityField
	}
	return c.Stats.SeverityField
}

// GetAccountField returns the account histogram field path
func (c *Config) GetAccountField() string {
	if c.Stats.AccountField == "" {
		return DefaultAccountField
	}
	return c.Stats.AccountField
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Timestamp: %s, Fetch: {Bucket: %s, MaxRequestsPerMinute: %d}}",
		c.GetTimestampField(), c.Fetch.Bucket, c.Fetch.MaxRequestsPerMinute)
}
