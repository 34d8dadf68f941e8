package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flights/internal/parser"
)

// NewImportCommand creates the 'import' subcommand for appending flights from CSV
// Usage: flights import <filename> --csv new_flights.csv
func NewImportCommand(log *zap.SugaredLogger) *cobra.Command {
	var csvFile string

	cmd := &cobra.Command{
		Use:   "import <filename>",
		Short: "Import flights from a CSV file",
		Long: `Append every flight of a CSV file to the JSON data file.

The CSV file should have columns in this order: destination, number_flight, type_plane
- destination: free-form text
- number_flight: integer
- type_plane: free-form text

A header row is detected and skipped. If any row is invalid nothing is imported.

Example:
  flights import flights.json --csv new_flights.csv` + fileArgHelp,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runImportCommand(log, args[0], csvFile)
		},
	}

	cmd.Flags().StringVarP(&csvFile, "csv", "c", "", "Path to CSV file (required)")
	cmd.MarkFlagRequired("csv")

	return cmd
}

func runImportCommand(log *zap.SugaredLogger, path, csvFile string) {
	runSession(log, path, func(s *session) error {
		imported, err := parser.ParseCSV(csvFile)
		if err != nil {
			return fmt.Errorf("importing flights: %w", err)
		}

		s.flights = append(s.flights, imported...)
		s.dirty = true
		log.Infof("imported %d flights from %s", len(imported), csvFile)
		return nil
	})
}
