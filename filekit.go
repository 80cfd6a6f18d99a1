package filekit

import (
	"sync"

	"github.com/Azure/filekit/internal/config"
	"github.com/Azure/filekit/internal/environments"
	"github.com/Azure/filekit/internal/logging"
)

// Default returns the process-wide Resolver, configured from FILEKIT_*
// environment variables the first time it is requested.
var Default = sync.OnceValue(func() *Resolver {
	cfg, err := config.Load()
	if err != nil {
		if cfg == nil {
			logging.GlobalLogger.WithError(err).Warn("Invalid filekit configuration. Using defaults.")
			cfg = config.Default()
		} else {
			logging.GlobalLogger.WithError(err).Warn("Invalid filekit environment. Detecting it instead.")
		}
	}
	return New(optionsFromConfig(cfg))
})

func optionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		ProjectMarker: cfg.ProjectMarker,
		WorkspaceFile: cfg.WorkspaceFile,
		SourceFile:    cfg.SourceFile,
	}
	if env, forced, err := environments.Parse(cfg.Environment); err == nil && forced {
		opts.Environment = &env
	}
	return opts
}

// Executable is Default().Executable().
func Executable() Path { return Default().Executable() }

// ExecutablePath is Default().ExecutablePath().
func ExecutablePath() string { return Default().ExecutablePath() }

// ExecutableFolder is Default().ExecutableFolder().
func ExecutableFolder() Path { return Default().ExecutableFolder() }

// ExecutableFolderPath is Default().ExecutableFolderPath().
func ExecutableFolderPath() string { return Default().ExecutableFolderPath() }

// ProjectFolder is Default().ProjectFolder().
func ProjectFolder() Path { return Default().ProjectFolder() }

// ProjectFolderPath is Default().ProjectFolderPath().
func ProjectFolderPath() string { return Default().ProjectFolderPath() }

// WorkingDirectory is Default().WorkingDirectory().
func WorkingDirectory() Path { return Default().WorkingDirectory() }

// WorkingDirectoryPath is Default().WorkingDirectoryPath().
func WorkingDirectoryPath() string { return Default().WorkingDirectoryPath() }
