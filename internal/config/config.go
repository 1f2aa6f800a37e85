package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	configData Config
	v          *viper.Viper
)

// Config holds all configuration settings.
type Config struct {
	// Lookup server configuration
	Server struct {
		Host string
		Port int
	}
	// Batch (create-from) configuration
	Batch struct {
		Suffix string
	}
	// Logging configuration
	Log struct {
		Level  string
		Format string
	}
}

const defaultConfig = `# dhcp_o82 Configuration File
server:
  host: localhost
  port: 1582

batch:
  suffix: -modified

log:
  level: info
  format: human
`

// Initialize sets up the configuration system. When configFile is empty the
// standard search paths are used and a default file is created under $HOME/.o82.
func Initialize(configFile string) error {
	v = viper.New()

	// Set default values
	setDefaults()

	// Environment variables
	v.SetEnvPrefix("O82") // prefix for env vars
	v.AutomaticEnv()      // read in environment variables that match
	v.SetEnvKeyReplacer(  // replace dots with underscores in env vars
		strings.NewReplacer(".", "_"),
	)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")     // name of config file (without extension)
		v.SetConfigType("yaml")       // config file type
		v.AddConfigPath(".")          // optionally look for config in working directory
		v.AddConfigPath("$HOME/.o82") // look for config in .o82 directory in home
		v.AddConfigPath("/etc/o82/")  // path to look for the config file in

		// Create config file if it doesn't exist
		if err := ensureConfig(); err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
	}

	// Read in config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if we can't find a config file, we'll use defaults
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal config into struct
	if err := v.Unmarshal(&configData); err != nil {
		return fmt.Errorf("unable to decode into config struct: %w", err)
	}

	return nil
}

// setDefaults sets default values for all configuration options.
func setDefaults() {
	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 1582)

	// Batch defaults
	v.SetDefault("batch.suffix", "-modified")

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "human")
}

// ensureConfig creates a default config file if none exists.
func ensureConfig() error {
	home := os.Getenv("HOME")
	if home == "" {
		return nil
	}

	dir := filepath.Join(home, ".o82")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(defaultConfig), 0o644); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the current configuration.
func Get() *Config {
	return &configData
}

// GetViper returns the viper instance.
func GetViper() *viper.Viper {
	return v
}
