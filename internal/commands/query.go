package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"flights/internal/config"
	"flights/internal/database"
	"flights/internal/flights"
)

// NewQueryCommand creates the 'query' subcommand for running SQL against exported flights
// Usage: flights query [--db flights.db] --sql "SELECT * FROM flights"
func NewQueryCommand(log *zap.SugaredLogger) *cobra.Command {
	var dbFile string
	var sqlQuery string
	var format string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Execute SQL queries against exported flights",
		Long: `Execute a SQL query against a SQLite database written by the export command.

SECURITY: Only read-only queries are allowed. Write operations (INSERT, UPDATE, DELETE,
CREATE, DROP, etc.) are blocked for data protection.

Example queries:
  # Flights per destination
  SELECT destination, COUNT(*) AS flights FROM flights GROUP BY destination;

  # Every Boeing
  SELECT * FROM flights WHERE type_plane LIKE 'Boeing%';

Example:
  flights query --db flights.db --sql "SELECT COUNT(*) FROM flights"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case config.FormatTable, config.FormatJSON, config.FormatYAML:
			default:
				return fmt.Errorf("invalid format %q: use table, json or yaml", format)
			}
			runQueryCommand(log, cmd.OutOrStdout(), dbFile, sqlQuery, format)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbFile, "db", config.DefaultDatabaseFile, config.DatabaseFileDescription)
	cmd.Flags().StringVarP(&sqlQuery, "sql", "q", "", "SQL query to execute (required)")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTable, "Output format: table, json or yaml")
	cmd.MarkFlagRequired("sql")

	return cmd
}

func runQueryCommand(log *zap.SugaredLogger, out io.Writer, dbFile, sqlQuery, format string) {
	guard(log, func() {
		if err := executeSingleQuery(out, dbFile, sqlQuery, format); err != nil {
			log.Error(err.Error())
		}
	})
}

// executeSingleQuery validates and runs one query and prints its results
func executeSingleQuery(out io.Writer, dbFile, query, format string) error {
	if err := ValidateReadOnlyQuery(query); err != nil {
		return fmt.Errorf("query validation failed: %w", err)
	}

	if _, err := os.Stat(dbFile); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("database file does not exist: %s (run the export command first)", dbFile)
	}

	db, err := database.OpenReadOnly(dbFile)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	result, err := database.ExecuteQuery(db, query)
	if err != nil {
		return err
	}

	return displayResults(out, result, format)
}

// displayResults formats and prints query results
func displayResults(out io.Writer, result database.Result, format string) error {
	rows := result.Rows
	if rows == nil {
		rows = []map[string]interface{}{}
	}

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", config.JSONIndent)
		return enc.Encode(rows)
	case config.FormatYAML:
		if len(rows) == 0 {
			_, err := fmt.Fprintln(out, "[]")
			return err
		}
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding results as yaml: %w", err)
		}
		return enc.Close()
	default:
		cells := make([][]string, len(rows))
		for i, row := range rows {
			cells[i] = make([]string, len(result.Columns))
			for j, column := range result.Columns {
				cells[i][j] = formatValue(row[column])
			}
		}
		return flights.WriteTable(out, result.Columns, cells)
	}
}

func formatValue(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}
