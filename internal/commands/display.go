package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flights/internal/config"
	"flights/internal/flights"
)

// NewDisplayCommand creates the 'display' subcommand for printing every flight
// Usage: flights display <filename> [--format table]
func NewDisplayCommand(log *zap.SugaredLogger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "display <filename>",
		Short: "Display all flights",
		Long: `Print every flight in the data file, in the order they were added.

Example:
  flights display flights.json
  flights display flights.json --format table` + fileArgHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			runDisplayCommand(log, cmd.OutOrStdout(), args[0], format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, config.FormatDescription)

	return cmd
}

func runDisplayCommand(log *zap.SugaredLogger, out io.Writer, path, format string) {
	runSession(log, path, func(s *session) error {
		if err := flights.Display(out, s.flights, format); err != nil {
			return fmt.Errorf("displaying flights: %w", err)
		}
		return nil
	})
}

// validateFormat rejects unknown --format values before any file is read
func validateFormat(format string) error {
	switch format {
	case config.FormatText, config.FormatTable, config.FormatJSON, config.FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid format %q: %s", format, config.FormatDescription)
	}
}
