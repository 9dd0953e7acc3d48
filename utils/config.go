package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

type Config struct {
	Env                  string `mapstructure:"ENV"`
	ServerPort           int    `mapstructure:"SERVER_PORT"`
	UseReloadlySandbox   bool   `mapstructure:"USE_RELOADLY_SANDBOX"`
	ReloadlyClientID     string `mapstructure:"RELOADLY_API_CLIENT_ID"`
	ReloadlyClientSecret string `mapstructure:"RELOADLY_API_CLIENT_SECRET"`
	Papertrail           string `mapstructure:"PAPERTRAIL"`
	PapertrailAppName    string `mapstructure:"PAPERTRAIL_APP_NAME"`
}

func LoadConfig(path string) (*Config, error) {
	// Validate that the path is not empty
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	// Disable environment variable prefix
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Configure config file
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Log the error, but don't fail entirely
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	// Create config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Fail fast before any network call is attempted
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ServerPort == 0 {
		return fmt.Errorf("server port must be specified")
	}

	if config.ReloadlyClientID == "" || config.ReloadlyClientSecret == "" {
		return fmt.Errorf("reloadly API credentials must be provided")
	}

	return nil
}

// Optional: Masking sensitive information for logging
func (c *Config) Redact() Config {
	redacted := *c
	redacted.ReloadlyClientSecret = "****"
	return redacted
}
