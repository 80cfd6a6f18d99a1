package commands

import (
	"fmt"

	"github.com/Azure/filekit"
	"github.com/spf13/cobra"
)

// locationResolver is the part of *filekit.Resolver the commands use.
type locationResolver interface {
	Executable() filekit.Path
	ExecutableFolder() filekit.Path
	ProjectFolder() filekit.Path
	ProjectFound() bool
	WorkingDirectory() filekit.Path
	Environment() filekit.Environment
}

var newResolver = func(opts filekit.Options) locationResolver {
	return filekit.New(opts)
}

// location describes one resolved path that has its own sub-command.
type location struct {
	use   string
	key   string
	label string
	short string
	path  func(locationResolver) filekit.Path
}

var locations = []location{
	{
		use:   "executable",
		key:   "executable",
		label: "Executable",
		short: "Print the running executable with symbolic links resolved.",
		path:  locationResolver.Executable,
	},
	{
		use:   "executable-folder",
		key:   "executable_folder",
		label: "Executable folder",
		short: "Print the folder the build wrote the executable to.",
		path:  locationResolver.ExecutableFolder,
	},
	{
		use:   "project",
		key:   "project_folder",
		label: "Project folder",
		short: "Print the nearest ancestor folder holding the project marker.",
		path:  locationResolver.ProjectFolder,
	},
	{
		use:   "workdir",
		key:   "working_directory",
		label: "Working directory",
		short: "Print the directory relative paths resolve against.",
		path:  locationResolver.WorkingDirectory,
	},
}

// Register the commands with our command runner.
func init() {
	rootCommand.AddCommand(pathsCommand)
	rootCommand.AddCommand(envCommand)
	for _, loc := range locations {
		rootCommand.AddCommand(newLocationCommand(loc))
	}
}

func resolverFromFlags(cmd *cobra.Command) (locationResolver, *resolutionOptions, error) {
	opts, err := bindResolutionOptions(cmd)
	if err != nil {
		return nil, nil, handleOptionError(cmd, err)
	}
	return newResolver(opts.resolverOptions()), opts, nil
}

var pathsCommand = &cobra.Command{
	Use:   "paths",
	Args:  cobra.NoArgs,
	Short: "Print every resolved location and the detected environment.",
	Long: `paths resolves the executable, its build folder, the project folder and
the effective working directory in one go.

Examples:
  filekit paths                       # Styled summary
  filekit paths --format json         # Machine readable
  filekit paths --environment ide     # Resolve as if launched from an IDE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, opts, err := resolverFromFlags(cmd)
		if err != nil {
			return err
		}

		entries := make([]entry, 0, len(locations)+2)
		for _, loc := range locations {
			entries = append(entries, entry{Key: loc.key, Label: loc.label, Value: loc.path(resolver).String()})
		}
		entries = append(entries,
			entry{Key: "project_found", Label: "Project found", Value: resolver.ProjectFound()},
			entry{Key: "environment", Label: "Environment", Value: resolver.Environment().String()},
		)

		if err := renderEntries(cmd.OutOrStdout(), opts.Format, entries); err != nil {
			return commandError(cmd, err, false, "error rendering paths")
		}
		return nil
	},
}

func newLocationCommand(loc location) *cobra.Command {
	return &cobra.Command{
		Use:   loc.use,
		Args:  cobra.NoArgs,
		Short: loc.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, opts, err := resolverFromFlags(cmd)
			if err != nil {
				return err
			}

			path := loc.path(resolver).String()
			if opts.Format == formatText {
				// Plain output so the result can be used in $(filekit project).
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			entries := []entry{{Key: loc.key, Label: loc.label, Value: path}}
			if err := renderEntries(cmd.OutOrStdout(), opts.Format, entries); err != nil {
				return commandError(cmd, err, false, "error rendering %s", loc.use)
			}
			return nil
		},
	}
}

var envCommand = &cobra.Command{
	Use:   "env",
	Args:  cobra.NoArgs,
	Short: "Print the detected launch environment.",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, opts, err := resolverFromFlags(cmd)
		if err != nil {
			return err
		}

		env := resolver.Environment()
		entries := []entry{
			{Key: "environment", Label: "Environment", Value: env.String()},
			{Key: "ide", Label: "IDE or debugger", Value: env.IsDevGUI()},
			{Key: "test", Label: "Test harness", Value: env.IsTestHarness()},
		}
		if err := renderEntries(cmd.OutOrStdout(), opts.Format, entries); err != nil {
			return commandError(cmd, err, false, "error rendering environment")
		}
		return nil
	},
}
