package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/daoatlas/daoatlas/internal/config"
)

// Config holds the application configuration loaded from flags, environment
// variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// API credentials
	CovalentAPIKey     string
	TwitterBearerToken string

	// Pipeline overrides
	CachePath string
	OrgLimit  int

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra)
//  2. Environment variables
//  3. .env files
//  4. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first so Viper's env binding sees them
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	bindAPIKeys()

	// Read config file if one exists in the standard locations
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".daoatlas")
		}
	}
	_ = viper.ReadInConfig()

	return &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		CovalentAPIKey:     viper.GetString("COVALENT_API_KEY"),
		TwitterBearerToken: viper.GetString("TWITTER_BEARER_TOKEN"),

		CachePath: viper.GetString("DAOATLAS_CACHE_PATH"),
		OrgLimit:  viper.GetInt("DAOATLAS_ORG_LIMIT"),

		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// SourcesConfig builds the source configuration from the embedded defaults
// plus the credentials and overrides carried by this config.
func (c *Config) SourcesConfig() (*config.Config, error) {
	sources, err := config.Default()
	if err != nil {
		return nil, err
	}

	sources.Covalent.APIKey = c.CovalentAPIKey
	sources.Twitter.BearerToken = c.TwitterBearerToken

	if c.CachePath != "" {
		sources.DeepDAO.CachePath = c.CachePath
	}
	if c.OrgLimit > 0 {
		sources.Pipeline.OrgLimit = c.OrgLimit
	}

	return sources, nil
}

// UpdateFromFlags updates config values from parsed command flags. Called
// after cobra parses flags so flag values take precedence over env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindAPIKeys explicitly binds the credential environment variables to Viper.
func bindAPIKeys() {
	keys := []string{
		"COVALENT_API_KEY",
		"TWITTER_BEARER_TOKEN",
		"DAOATLAS_CACHE_PATH",
		"DAOATLAS_ORG_LIMIT",
	}

	for _, key := range keys {
		_ = viper.BindEnv(key)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
