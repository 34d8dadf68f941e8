// Package config provides shared configuration constants and settings
// for the flights application
package config

const (
	// AppName is the program name shown in usage and version output
	AppName = "flights"

	// Version is the release reported by --version
	Version = "0.1.0"

	// LogFile is the append-mode log file, relative to the working directory
	LogFile = "flights.log"

	// DataFileDescription is the help text for the positional data file argument
	DataFileDescription = "Path to the JSON file holding flight records"

	// DefaultDatabaseFile is the default SQLite database filename
	// used by the export and query commands when no --db flag is provided
	DefaultDatabaseFile = "flights.db"

	// DatabaseFileDescription is the help text description for the database file flag
	DatabaseFileDescription = "Path to SQLite database file"

	// DefaultTableName is the default table name for exported flights
	DefaultTableName = "flights"

	// TableNameDescription is the help text description for the table name flag
	TableNameDescription = "Table name to use for storing/querying flights"

	// JSONIndent is the per-level indentation of the data file
	JSONIndent = "    "
)

// Display formats accepted by --format
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// FormatDescription is the help text description for the format flag
const FormatDescription = "Output format: text, table, json or yaml"
