package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/logbox/config"
	"github.com/teranos/logbox/sym"
	"gopkg.in/yaml.v3"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: sym.Config + " Manage logbox configuration",
	Long: sym.Config + ` config — Manage logbox configuration

Display and manage logbox configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (LOGBOX_* prefix)
3. Project config (./logbox.toml, searches up directories)
4. User config (~/.logbox/config.toml)
5. System config (/etc/logbox/config.toml)
6. Default values

Examples:
  logbox config show                        # Show current configuration
  logbox config show --format json          # Show configuration in JSON format
  logbox config get timestamp.field         # Get specific config value
  logbox config set stats.severity_field level
  logbox config validate                    # Validate current configuration`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the current logbox configuration from all sources",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., timestamp.field, fetch.bucket)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the user config",
	Long: `Set a configuration value in ~/.logbox/config.toml using dot notation.

The previous file is kept as a rotating backup (.back1 through .back3)
before every write. Values parse as integers or booleans when they look
like one, and stay strings otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate that the current logbox configuration is valid",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which files were checked.

Lists all configuration sources in order of precedence, showing
which files exist and which are missing.`,
	RunE: runConfigWhere,
}

var configFormat string

func init() {
	// Add flags
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	// Add subcommands
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configSetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Marshal to requested format
	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Printf("# logbox configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		fmt.Printf("# logbox configuration\n%s", string(data))

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}

	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	// Check if key exists in configuration
	v := config.GetViper()
	if !v.IsSet(key) {
		return fmt.Errorf("configuration key %q not found", key)
	}

	// Get the value as interface{} to preserve type
	value := config.Get(key)
	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := config.ParseSettingValue(args[1])

	if err := config.UpdateSetting(key, value); err != nil {
		return fmt.Errorf("failed to update %q: %w", key, err)
	}

	// Reload so the merged cascade reflects the write, then warn
	// if the new value breaks validation
	config.Reset()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		pterm.Warning.Printf("Saved, but the merged configuration no longer validates: %v\n", err)
	}

	fmt.Printf("✓ %s = %v\n", key, value)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Println("✓ Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	fmt.Println("Configuration cascade (later overrides earlier):")
	fmt.Println("  1. [DEFAULT]  Built-in defaults")
	fmt.Println("  2. [SYSTEM]   /etc/logbox/config.toml")
	fmt.Println("  3. [USER]     ~/.logbox/config.toml")
	fmt.Println("  4. [PROJECT]  ./logbox.toml (searches up directories)")
	fmt.Println("  5. [ENV]      LOGBOX_* environment variables")
	fmt.Println()

	fmt.Println("Configuration files:")
	for _, path := range config.CandidatePaths() {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  ✓ %s\n", path)
		} else {
			fmt.Printf("  ✗ %s (missing)\n", path)
		}
	}

	return nil
}
