package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"PROJECT_MARKER", "WORKSPACE_FILE", "SOURCE_FILE", "ENVIRONMENT", "LOG_LEVEL", "LOG_PATH"} {
		key := Prefix + "_" + name
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	expected := Default()
	assert.Equal(t, expected.ProjectMarker, cfg.ProjectMarker)
	assert.Equal(t, expected.WorkspaceFile, cfg.WorkspaceFile)
	assert.Equal(t, expected.Environment, cfg.Environment)
	assert.Equal(t, expected.LogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.SourceFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FILEKIT_PROJECT_MARKER", "Project.marker")
	t.Setenv("FILEKIT_WORKSPACE_FILE", "workspace.toml")
	t.Setenv("FILEKIT_SOURCE_FILE", "/src/checkouts/filekit/build.go")
	t.Setenv("FILEKIT_ENVIRONMENT", "ide")
	t.Setenv("FILEKIT_LOG_LEVEL", "debug")
	t.Setenv("FILEKIT_LOG_PATH", "/tmp/filekit.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ProjectMarker: "Project.marker",
		WorkspaceFile: "workspace.toml",
		SourceFile:    "/src/checkouts/filekit/build.go",
		Environment:   "ide",
		LogLevel:      "debug",
		LogPath:       "/tmp/filekit.log",
	}, cfg)
}

func TestLoadTreatsEmptyEnvironmentAsAuto(t *testing.T) {
	t.Setenv("FILEKIT_ENVIRONMENT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Environment)
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("FILEKIT_ENVIRONMENT", "cloud")

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FILEKIT_ENVIRONMENT")
	require.NotNil(t, cfg)
	assert.Equal(t, "auto", cfg.Environment)

	assert.Equal(t, Default(), LoadOrDefault())
}

func TestLoadAcceptsEnvironmentNamesCaseInsensitively(t *testing.T) {
	for _, name := range []string{"IDE", "Test", "test+ide", " ide+test "} {
		t.Run(name, func(t *testing.T) {
			t.Setenv("FILEKIT_ENVIRONMENT", name)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, name, cfg.Environment)
		})
	}
}

func TestLoadKeepsSettingsWhenEnvironmentInvalid(t *testing.T) {
	t.Setenv("FILEKIT_PROJECT_MARKER", "Project.marker")
	t.Setenv("FILEKIT_WORKSPACE_FILE", "workspace.yaml")
	t.Setenv("FILEKIT_ENVIRONMENT", "cloud")

	cfg, err := Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "Project.marker", cfg.ProjectMarker)
	assert.Equal(t, "workspace.yaml", cfg.WorkspaceFile)
	assert.Equal(t, "auto", cfg.Environment)
}
