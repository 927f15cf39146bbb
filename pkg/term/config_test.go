package term

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.MaxExpandIterations != MaxExpandIterations {
		t.Errorf("MaxExpandIterations = %d, want %d", cfg.MaxExpandIterations, MaxExpandIterations)
	}
	if cfg.StrictImports {
		t.Error("StrictImports should default to false")
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	os.Setenv("TERMSEARCH_LOG_LEVEL", "debug")
	os.Setenv("TERMSEARCH_MAX_EXPAND_ITERATIONS", "25")
	os.Setenv("TERMSEARCH_STRICT_IMPORTS", "true")
	defer func() {
		os.Unsetenv("TERMSEARCH_LOG_LEVEL")
		os.Unsetenv("TERMSEARCH_MAX_EXPAND_ITERATIONS")
		os.Unsetenv("TERMSEARCH_STRICT_IMPORTS")
	}()

	cfg := ConfigFromEnvironment()
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.MaxExpandIterations != 25 {
		t.Errorf("MaxExpandIterations = %d, want 25", cfg.MaxExpandIterations)
	}
	if !cfg.StrictImports {
		t.Error("StrictImports should be true")
	}
}

func TestConfigFromEnvironmentInvalidNumber(t *testing.T) {
	os.Setenv("TERMSEARCH_MAX_EXPAND_ITERATIONS", "not-a-number")
	defer os.Unsetenv("TERMSEARCH_MAX_EXPAND_ITERATIONS")

	cfg := ConfigFromEnvironment()
	if cfg.MaxExpandIterations != MaxExpandIterations {
		t.Errorf("MaxExpandIterations = %d, want default on bad input", cfg.MaxExpandIterations)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default is valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "zero iterations", mutate: func(c *Config) { c.MaxExpandIterations = 0 }, wantErr: true},
		{name: "negative iterations", mutate: func(c *Config) { c.MaxExpandIterations = -5 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalConfigCopy(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	cfg := DefaultConfig()
	cfg.MaxExpandIterations = 7
	SetGlobalConfig(cfg)

	got := GetGlobalConfig()
	got.MaxExpandIterations = 99
	if GetGlobalConfig().MaxExpandIterations != 7 {
		t.Error("GetGlobalConfig should return a copy")
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "1", "yes", "on", " TRUE "} {
		if !parseBool(s) {
			t.Errorf("parseBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"false", "0", "no", "off", "", "maybe"} {
		if parseBool(s) {
			t.Errorf("parseBool(%q) = true, want false", s)
		}
	}
}
