package term

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
)

// MaxExpandIterations is the default ceiling for the import/component and
// list expansion fixpoint loops. Exceeding it converts a cyclic template
// graph into a non-termination error instead of an infinite loop.
const MaxExpandIterations = 100

// Config contains the engine configuration.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off).
	LogLevel string
	// MaxExpandIterations bounds the fixpoint loops in import/component and
	// list expansion.
	MaxExpandIterations int
	// StrictImports turns malformed import directives (missing key/from)
	// into errors instead of silently skipping them.
	StrictImports bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:            "info",
		MaxExpandIterations: MaxExpandIterations,
		StrictImports:       false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("TERMSEARCH_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	if val := os.Getenv("TERMSEARCH_MAX_EXPAND_ITERATIONS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.MaxExpandIterations = n
		}
	}

	if val := os.Getenv("TERMSEARCH_STRICT_IMPORTS"); val != "" {
		config.StrictImports = parseBool(val)
	}

	return config
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.MaxExpandIterations <= 0 {
		return errors.New("max expand iterations must be positive")
	}

	return nil
}

// GetGlobalConfig returns a copy of the global configuration.
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration.
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	UpdateLoggerFromConfig()
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
