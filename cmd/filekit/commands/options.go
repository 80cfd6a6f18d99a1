package commands

import (
	"errors"
	"fmt"

	"github.com/Azure/filekit"
	"github.com/Azure/filekit/internal/environments"
	"github.com/spf13/cobra"
)

const optionBindingFailureMessage = "error binding command options"

type resolutionOptions struct {
	Environment   string
	ProjectMarker string
	WorkspaceFile string
	SourceFile    string
	Format        outputFormat
}

type optionBindingError struct {
	user    bool
	message string
	err     error
}

func (e *optionBindingError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

func (e *optionBindingError) Unwrap() error {
	return e.err
}

func newOptionBindingError(user bool, message string, err error) *optionBindingError {
	return &optionBindingError{user: user, message: message, err: err}
}

func bindResolutionOptions(cmd *cobra.Command) (*resolutionOptions, error) {
	environment, err := getEnvironmentSetting(cmd)
	if err != nil {
		return nil, newOptionBindingError(true, "error resolving environment", err)
	}

	format, err := getFormatSetting(cmd)
	if err != nil {
		return nil, newOptionBindingError(true, "error resolving output format", err)
	}

	marker, err := cmd.Flags().GetString("marker")
	if err != nil {
		return nil, newOptionBindingError(false, optionBindingFailureMessage, err)
	}
	if marker == "" {
		return nil, newOptionBindingError(true, "--marker must not be empty", nil)
	}

	workspaceFile, err := cmd.Flags().GetString("workspace-file")
	if err != nil {
		return nil, newOptionBindingError(false, optionBindingFailureMessage, err)
	}

	sourceFile, err := cmd.Flags().GetString("source-file")
	if err != nil {
		return nil, newOptionBindingError(false, optionBindingFailureMessage, err)
	}

	return &resolutionOptions{
		Environment:   environment,
		ProjectMarker: marker,
		WorkspaceFile: workspaceFile,
		SourceFile:    sourceFile,
		Format:        format,
	}, nil
}

func handleOptionError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var bindingErr *optionBindingError
	if errors.As(err, &bindingErr) {
		return commandError(cmd, bindingErr.err, bindingErr.user, bindingErr.message)
	}
	return commandError(cmd, err, false, optionBindingFailureMessage)
}

// resolverOptions converts the bound flags into library options. A forced
// environment skips detection.
func (o *resolutionOptions) resolverOptions() filekit.Options {
	opts := filekit.Options{
		ProjectMarker: o.ProjectMarker,
		WorkspaceFile: o.WorkspaceFile,
		SourceFile:    o.SourceFile,
	}
	if env, forced, err := environments.Parse(o.Environment); err == nil && forced {
		opts.Environment = &env
	}
	return opts
}

func getEnvironmentSetting(cmd *cobra.Command) (string, error) {
	environment, err := cmd.Flags().GetString("environment")
	if err != nil {
		return "", err
	}
	if _, _, err := environments.Parse(environment); err != nil {
		return "", err
	}
	return environment, nil
}

func getFormatSetting(cmd *cobra.Command) (outputFormat, error) {
	raw, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}
	return parseOutputFormat(raw)
}
