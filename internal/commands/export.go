package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flights/internal/config"
	"flights/internal/database"
)

// NewExportCommand creates the 'export' subcommand for copying flights into SQLite
// Usage: flights export <filename> [--db flights.db] [--table flights] [--append]
func NewExportCommand(log *zap.SugaredLogger) *cobra.Command {
	var dbFile string
	var table string
	var appendMode bool

	cmd := &cobra.Command{
		Use:   "export <filename>",
		Short: "Export flights into a SQLite database",
		Long: `Copy every flight of the JSON data file into a SQLite table so it can be
examined with SQL (see the query command). The data file is not modified.

By default the table contents are replaced by the exported flights.
Use the --append flag to add them after the rows already in the table.

Example:
  flights export flights.json --db flights.db
  flights export flights.json --db flights.db --table archive --append` + fileArgHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.ValidateTableName(table); err != nil {
				return err
			}
			runExportCommand(log, args[0], dbFile, table, appendMode)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbFile, "db", config.DefaultDatabaseFile, config.DatabaseFileDescription)
	cmd.Flags().StringVar(&table, "table", config.DefaultTableName, config.TableNameDescription)
	cmd.Flags().BoolVar(&appendMode, "append", false, "Append to existing table rows (default: replace them)")

	return cmd
}

func runExportCommand(log *zap.SugaredLogger, path, dbFile, table string, appendMode bool) {
	runSession(log, path, func(s *session) error {
		if s.loadErr != nil {
			return fmt.Errorf("export skipped: %s could not be loaded", path)
		}

		db, err := database.Initialize(dbFile, table)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		count, err := database.InsertFlights(db, table, s.flights, appendMode)
		if err != nil {
			return fmt.Errorf("failed to export flights: %w", err)
		}

		log.Infof("exported %d flights to %s (table %s)", count, dbFile, table)
		return nil
	})
}
