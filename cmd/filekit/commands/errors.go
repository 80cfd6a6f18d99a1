package commands

import (
	"errors"
	"fmt"

	"github.com/Azure/filekit/internal/logging"
	"github.com/spf13/cobra"
)

// commandError logs and wraps CLI errors consistently. ExecuteCLI prints the
// returned error once; when showHelp is true the command's usage is printed
// first.
func commandError(cmd *cobra.Command, err error, showHelp bool, format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)

	if err != nil {
		logging.GlobalLogger.Debugf("%s: %v", message, err)
		err = fmt.Errorf("%s: %w", message, err)
	} else {
		logging.GlobalLogger.Debug(message)
		err = errors.New(message)
	}

	if showHelp {
		cmd.PrintErr(cmd.UsageString())
		cmd.PrintErrln()
	}

	return err
}
