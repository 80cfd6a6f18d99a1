package config

import (
	"fmt"

	"github.com/Azure/filekit/internal/environments"
	"github.com/Azure/filekit/internal/projectroot"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. FILEKIT_PROJECT_MARKER.
const Prefix = "FILEKIT"

// Config holds the settings that can be supplied through the environment.
type Config struct {
	// ProjectMarker is the file whose presence marks the project root.
	ProjectMarker string `envconfig:"PROJECT_MARKER" default:"go.mod"`
	// WorkspaceFile is the optional metadata file that may redirect the
	// project root. Set it to an empty value to disable redirects.
	WorkspaceFile string `envconfig:"WORKSPACE_FILE" default:"info.plist"`
	// SourceFile overrides the compiled-in location of the library sources.
	SourceFile string `envconfig:"SOURCE_FILE"`
	// Environment is "auto" to detect, or a forced environment name.
	Environment string `envconfig:"ENVIRONMENT" default:"auto"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogPath  string `envconfig:"LOG_PATH"`
}

// Load reads the configuration from the environment. An unrecognised
// environment name is reported together with the rest of the configuration,
// its Environment reset to auto.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if _, _, err := environments.Parse(cfg.Environment); err != nil {
		invalid := cfg.Environment
		cfg.Environment = environments.NameAuto
		return &cfg, fmt.Errorf("failed to load config: invalid %s_ENVIRONMENT %q: %w", Prefix, invalid, err)
	}
	if cfg.Environment == "" {
		cfg.Environment = environments.NameAuto
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		ProjectMarker: projectroot.DefaultMarker,
		WorkspaceFile: projectroot.DefaultWorkspaceFile,
		Environment:   environments.NameAuto,
		LogLevel:      "warn",
	}
}
