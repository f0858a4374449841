package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Tracker configuration
	RosterPath       string
	AchievementsFile string
	GeminiModel      string
	GeminiAPIKey     string
	MaxImages        int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later via UpdateFromFlags)
//  2. Environment variables
//  3. .env files
//  4. Config file (~/.hd2tracker.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// LoadConfigFile loads configuration like LoadConfig but reads the given
// config file instead of searching the standard locations. Unlike the
// search, an explicitly named file must exist.
func LoadConfigFile(path string) (*Config, error) {
	return loadConfig(path)
}

func loadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Bind the API key variables the scan engine accepts
	bindAPIKeys()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", fmt.Sprintf("reading %s", configFile), err)
		}
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(constants.DefaultConfigName)
		}

		// Missing config files are fine; defaults cover everything
		_ = viper.ReadInConfig()
	}

	// Build config from viper
	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		RosterPath:       viper.GetString("roster_path"),
		AchievementsFile: viper.GetString("achievements_file"),
		GeminiModel:      viper.GetString("gemini_model"),
		GeminiAPIKey:     viper.GetString("gemini_api_key"),
		MaxImages:        viper.GetInt("max_images"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// The Gemini SDK also reads GOOGLE_API_KEY, so honor it as a fallback
	if config.GeminiAPIKey == "" {
		config.GeminiAPIKey = viper.GetString("google_api_key")
	}

	// Apply defaults for anything still unset
	if config.MaxImages == 0 {
		config.MaxImages = constants.MaxUploadImages
	}
	if config.RosterPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			config.RosterPath = filepath.Join(home, constants.DefaultRosterDirName)
		}
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags. This
// is called after cobra parses flags to ensure flag values take
// precedence over config file and environment values.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Files are loaded in order: .env, .env.local
// Later files do not override earlier ones (godotenv behavior).
func loadEnvFiles() {
	envFiles := []string{".env", ".env.local"}
	for _, file := range envFiles {
		// Ignore errors - .env files are optional
		_ = godotenv.Load(file)
	}
}

// bindAPIKeys explicitly binds the API key environment variables so
// they resolve even without the AutomaticEnv key replacer.
func bindAPIKeys() {
	apiKeys := []string{
		"GEMINI_API_KEY",
		"GOOGLE_API_KEY",
	}

	for _, key := range apiKeys {
		if err := viper.BindEnv(strings.ToLower(key), key); err != nil {
			// Log binding errors but continue - these are not fatal
			fmt.Fprintf(os.Stderr, "Warning: failed to bind env var %s: %v\n", key, err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
