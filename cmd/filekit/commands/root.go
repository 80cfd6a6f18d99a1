package commands

import (
	"fmt"
	"os"

	"github.com/Azure/filekit/internal/config"
	"github.com/Azure/filekit/internal/logging"
	"github.com/spf13/cobra"
)

const logPathEnvVar = config.Prefix + "_LOG_PATH"

// The root command for the CLI. Initializes logging and validates the shared
// flags for all other commands.
var rootCommand = &cobra.Command{
	Use:           "filekit",
	Short:         "Report where this program, its project and its working directory are.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return commandError(cmd, err, false, "error getting log level")
		}

		logPath, err := cmd.Flags().GetString("log-path")
		if err != nil {
			return commandError(cmd, err, false, "error getting log path")
		}
		if logPath == "" {
			logPath = os.Getenv(logPathEnvVar)
		}

		logging.Init(logging.LevelFromString(logLevel), logPath)

		if _, err := getEnvironmentSetting(cmd); err != nil {
			return commandError(cmd, err, true, "error resolving environment")
		}
		if _, err := getFormatSetting(cmd); err != nil {
			return commandError(cmd, err, true, "error resolving output format")
		}

		return nil
	},
}

// registerRootFlags adds the persistent flags shared by every command. Flag
// defaults come from the FILEKIT_* environment.
func registerRootFlags(cfg *config.Config) {
	flags := rootCommand.PersistentFlags()

	flags.String(
		"log-level",
		cfg.LogLevel,
		"Set logging level (trace|debug|info|warn|error|fatal).",
	)
	flags.String(
		"log-path",
		"",
		fmt.Sprintf("Write logs to a file instead of stderr (%s when given without a value, overridable via %s)", logging.DefaultLogFile, logPathEnvVar),
	)
	flags.Lookup("log-path").NoOptDefVal = logging.DefaultLogFile

	flags.String(
		"environment",
		cfg.Environment,
		"The environment to resolve for. Valid options are 'auto', 'local', 'ide', 'test' and 'ide+test'. 'auto' detects it from the executable path.",
	)
	flags.String("marker", cfg.ProjectMarker, "File name that marks the project root.")
	flags.String("workspace-file", cfg.WorkspaceFile, "Workspace metadata file whose WorkspacePath redirects the project root. Empty disables it.")
	flags.String("source-file", cfg.SourceFile, "Override the location of the filekit sources used to infer the build folder.")
	flags.StringP("format", "o", string(formatText), "Output format (text|json|yaml|markdown).")
}

// Entrypoint into the filekit CLI.
func ExecuteCLI() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if cfg == nil {
			cfg = config.Default()
		}
	}
	registerRootFlags(cfg)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		logging.GlobalLogger.Errorf("Failed to execute filekit: %s", err)
		os.Exit(1)
	}
}
