package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flights/internal/flights"
)

// NewAddCommand creates the 'add' subcommand for appending a flight
// Usage: flights add <filename> -d Paris -n 101 -t Boeing737
func NewAddCommand(log *zap.SugaredLogger) *cobra.Command {
	var destination string
	var number int
	var planeType string

	cmd := &cobra.Command{
		Use:   "add <filename>",
		Short: "Add a new flight",
		Long: `Append a flight record to the JSON data file.

The file is created if it does not exist. Existing records are kept in
order and the new flight is written after them.

Example:
  flights add flights.json --destination Paris --number 101 --type Boeing737` + fileArgHelp,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runAddCommand(log, args[0], destination, number, planeType)
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Flight destination (required)")
	cmd.Flags().IntVarP(&number, "number", "n", 0, "Flight number (required)")
	cmd.Flags().StringVarP(&planeType, "type", "t", "", "Plane type (required)")
	cmd.MarkFlagRequired("destination")
	cmd.MarkFlagRequired("number")
	cmd.MarkFlagRequired("type")

	return cmd
}

func runAddCommand(log *zap.SugaredLogger, path, destination string, number int, planeType string) {
	runSession(log, path, func(s *session) error {
		s.flights = flights.Add(s.flights, destination, number, planeType)
		s.dirty = true
		log.Info("flight added")
		return nil
	})
}
