package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/logbox/errors"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	// Check if file exists before backing up
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	// Delete oldest backup if exists
	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Log deletion failures (but don't fail config save)
		fmt.Printf("⚠️  Failed to delete old backup %s: %v\n", back3, err)
	}

	// Rotate .back2 to .back3
	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	// Rotate .back1 to .back2
	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	// Copy current to .back1
	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// UserConfigPath returns the path to the writable user config file in ~/.logbox/config.toml
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".logbox", "config.toml")
}

// loadOrInitializeUserConfig loads the user config file, or starts an empty one if it doesn't exist
func loadOrInitializeUserConfig() (map[string]interface{}, string, error) {
	configPath := UserConfigPath()
	if configPath == "" {
		return nil, "", errors.New("could not determine home directory")
	}

	// Ensure ~/.logbox directory exists
	logboxDir := filepath.Dir(configPath)
	if err := os.MkdirAll(logboxDir, DefaultDirPermissions); err != nil {
		return nil, "", errors.Wrap(err, "failed to create .logbox directory")
	}

	// Try to read existing config
	var config map[string]interface{}
	if data, err := os.ReadFile(configPath); err == nil {
		// File exists, parse it
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, "", errors.Wrap(err, "failed to parse user config")
		}
	} else {
		// File doesn't exist, create empty config
		config = make(map[string]interface{})
	}

	return config, configPath, nil
}

// saveUserConfig writes the config to the user config file with backup
func saveUserConfig(config map[string]interface{}, configPath string) error {
	// Create backup
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	// Marshal to TOML
	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Write to file
	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write user config")
	}

	return nil
}

// ParseSettingValue converts a raw CLI string into a typed TOML value.
// "5" becomes an integer, "true" a bool, everything else stays a string.
func ParseSettingValue(raw string) interface{} {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

// UpdateSetting sets a dotted key (e.g. "fetch.bucket") in the user config file.
// Intermediate sections are created as needed.
func UpdateSetting(key string, value interface{}) error {
	if key == "" {
		return errors.New("setting key cannot be empty")
	}

	config, configPath, err := loadOrInitializeUserConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load user config")
	}

	// Walk to the section holding the leaf key, creating tables as we go
	segments := strings.Split(key, ".")
	node := config
	for _, section := range segments[:len(segments)-1] {
		child, ok := node[section].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			node[section] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value

	return saveUserConfig(config, configPath)
}
