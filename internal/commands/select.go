package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flights/internal/config"
	"flights/internal/flights"
)

// NewSelectCommand creates the 'select' subcommand for filtering flights
// Usage: flights select <filename> --select Paris
func NewSelectCommand(log *zap.SugaredLogger) *cobra.Command {
	var term string
	var format string

	cmd := &cobra.Command{
		Use:   "select <filename>",
		Short: "Select flights",
		Long: `Print the flights whose field values contain the given text.

The destination, flight number and plane type of each flight are joined
and searched for the text. Matching is case-sensitive.

Example:
  flights select flights.json --select Paris
  flights select flights.json -s 737 --format json` + fileArgHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			runSelectCommand(log, cmd.OutOrStdout(), args[0], term, format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&term, "select", "s", "", "Text to search for (required)")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, config.FormatDescription)
	cmd.MarkFlagRequired("select")

	return cmd
}

func runSelectCommand(log *zap.SugaredLogger, out io.Writer, path, term, format string) {
	runSession(log, path, func(s *session) error {
		selected := flights.Select(s.flights, term)
		log.Infof("selected %d of %d flights", len(selected), len(s.flights))
		if err := flights.Display(out, selected, format); err != nil {
			return fmt.Errorf("displaying flights: %w", err)
		}
		return nil
	})
}
