// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	domainerrors "github.com/listenupapp/emojigen/internal/errors"
	"github.com/listenupapp/emojigen/internal/validation"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Output  OutputConfig
	Dataset DatasetConfig
	Catalog CatalogConfig
	Unicode UnicodeConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `env:"ENV" validate:"oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// OutputConfig holds catalog output configuration.
type OutputConfig struct {
	Path string `env:"EMOJI_OUTPUT_PATH" validate:"required"`
}

// DatasetConfig selects the raw emoji dataset.
type DatasetConfig struct {
	// Source is "unicode" (emoji-test.txt, falling back to the library when it
	// cannot be loaded) or "library" (bundled alias table, no modifier
	// sequences).
	Source string `env:"EMOJI_DATASET" validate:"oneof=library unicode"`
}

// CatalogConfig holds naming and categorization strategy configuration.
type CatalogConfig struct {
	Categorizer      string `env:"EMOJI_CATEGORIZER" validate:"oneof=unicode-group token-frequency"`
	Ampersand        string `env:"EMOJI_AMPERSAND" validate:"oneof=keep and"`
	MinCategoryCount int    `env:"EMOJI_MIN_CATEGORY_COUNT" validate:"gte=1"`
}

// UnicodeConfig holds emoji-test.txt retrieval configuration.
type UnicodeConfig struct {
	Enabled  bool          `env:"UNICODE_FETCH_ENABLED"`
	URL      string        `env:"UNICODE_EMOJI_TEST_URL" validate:"omitempty,url"`
	FilePath string        `env:"UNICODE_EMOJI_TEST_FILE"`
	Timeout  time.Duration `env:"UNICODE_FETCH_TIMEOUT" validate:"gt=0"`
}

// Flags carries command-line overrides. Empty fields are ignored.
type Flags struct {
	OutputPath string
	LogLevel   string
}

// DefaultUnicodeURL is the emoji-test.txt fetched when none is configured.
const DefaultUnicodeURL = "https://www.unicode.org/Public/17.0.0/emoji/emoji-test.txt"

// Load loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file (EMOJI_ENV_FILE, default ".env").
// 4. Default values (lowest priority).
func Load(flags Flags) (*Config, error) {
	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(getConfigValue("", "EMOJI_ENV_FILE", ".env"))

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue("", "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getConfigValue(flags.LogLevel, "LOG_LEVEL", "info")),
		},
		Output: OutputConfig{
			Path: getConfigValue(flags.OutputPath, "EMOJI_OUTPUT_PATH", "emojis.json"),
		},
		Dataset: DatasetConfig{
			Source: getConfigValue("", "EMOJI_DATASET", "unicode"),
		},
		Catalog: CatalogConfig{
			Categorizer: getConfigValue("", "EMOJI_CATEGORIZER", "unicode-group"),
			Ampersand:   getConfigValue("", "EMOJI_AMPERSAND", "keep"),
		},
		Unicode: UnicodeConfig{
			Enabled:  getBoolConfigValue("UNICODE_FETCH_ENABLED", true),
			URL:      getConfigValue("", "UNICODE_EMOJI_TEST_URL", DefaultUnicodeURL),
			FilePath: getConfigValue("", "UNICODE_EMOJI_TEST_FILE", ""),
		},
	}

	minCount, err := getIntConfigValue("EMOJI_MIN_CATEGORY_COUNT", 3)
	if err != nil {
		return nil, err
	}
	cfg.Catalog.MinCategoryCount = minCount

	timeoutStr := getConfigValue("", "UNICODE_FETCH_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeInvalidConfig, "invalid UNICODE_FETCH_TIMEOUT %q", timeoutStr)
	}
	cfg.Unicode.Timeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all config values are present and valid.
func (c *Config) Validate() error {
	if err := validation.NewWithTag("env").Validate(c); err != nil {
		return domainerrors.Wrap(err, domainerrors.CodeInvalidConfig, "config validation failed")
	}
	return nil
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from env var or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(envKey string, defaultValue bool) bool {
	strValue := getConfigValue("", envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// getIntConfigValue returns an int from env var or default.
func getIntConfigValue(envKey string, defaultValue int) (int, error) {
	strValue := getConfigValue("", envKey, "")
	if strValue == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(strValue))
	if err != nil {
		return 0, domainerrors.Wrapf(err, domainerrors.CodeInvalidConfig, "invalid %s %q", envKey, strValue)
	}
	return n, nil
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
