package config

import (
	"github.com/spf13/viper"
)

// SetDefaults sets all default configuration values on the given viper instance.
// Defaults match the log platform's export schema so a bare install works
// against standard audit exports without any config file.
func SetDefaults(v *viper.Viper) {
	// Timestamp defaults
	v.SetDefault("timestamp.field", DefaultTimestampField)

	// Stats defaults
	v.SetDefault("stats.resource_field", DefaultResourceField)
	v.SetDefault("stats.severity_field", DefaultSeverityField)
	v.SetDefault("stats.account_field", DefaultAccountField)

	// Fetch defaults
	v.SetDefault("fetch.bucket", "")
	v.SetDefault("fetch.max_requests_per_minute", 0)
}

// BindSensitiveEnvVars explicitly binds environment variables for sensitive
// values so they never need to live in a config file on disk.
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("fetch.credentials_file", "LOGBOX_FETCH_CREDENTIALS_FILE")
}
