// Package database provides SQLite export of flight records and read-only
// querying of the exported data
package database

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"flights/internal/models"
)

// DB interface defines database operations for easier testing and extensibility
type DB interface {
	Close() error
	Begin() (*sql.Tx, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// sqliteDB implements the DB interface for SQLite
type sqliteDB struct {
	*sql.DB
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTableName rejects names that cannot be used as a bare SQL identifier
func ValidateTableName(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("invalid table name %q: use letters, digits and underscores", table)
	}
	return nil
}

// Open connects to an existing or new SQLite database without touching its schema
func Open(dbPath string) (DB, error) {
	return open(dbPath)
}

// OpenReadOnly connects to an existing SQLite database in read-only mode.
// Every write, including PRAGMA assignments, fails at the connection.
func OpenReadOnly(dbPath string) (DB, error) {
	return open(fmt.Sprintf("file:%s?mode=ro", dbPath))
}

func open(dsn string) (DB, error) {
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls
	sqlDB.SetMaxOpenConns(1)

	db := &sqliteDB{sqlDB}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Initialize opens the database and creates the flights table if needed
func Initialize(dbPath, table string) (DB, error) {
	if err := ValidateTableName(table); err != nil {
		return nil, err
	}

	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := createTable(db, table); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTable sets up the flights table. The id column keeps the record
// order of the data file.
func createTable(db DB, table string) error {
	createTableSQL := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		destination TEXT NOT NULL,
		number_flight INTEGER NOT NULL,
		type_plane TEXT NOT NULL
	);`, table)

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// InsertFlights writes flights into table inside a single transaction.
// If appendMode is false, existing rows are cleared first.
func InsertFlights(db DB, table string, flights []models.Flight, appendMode bool) (int64, error) {
	if err := ValidateTableName(table); err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if !appendMode {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return 0, fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (destination, number_flight, type_plane) VALUES (?, ?, ?)", table))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var insertedCount int64
	for _, f := range flights {
		if _, err := stmt.Exec(f.Destination, f.Number, f.PlaneType); err != nil {
			return 0, fmt.Errorf("failed to insert flight %d: %w", f.Number, err)
		}
		insertedCount++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return insertedCount, nil
}

// Result is the outcome of a generic query: column names in select order
// and one map per row
type Result struct {
	Columns []string
	Rows    []map[string]interface{}
}

// ExecuteQuery executes a SQL query and returns its columns and rows.
// Byte slices are converted to strings.
func ExecuteQuery(db DB, query string) (Result, error) {
	rows, err := db.Query(query)
	if err != nil {
		return Result{}, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("failed to get columns: %w", err)
	}

	result := Result{Columns: columns}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return Result{}, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[column] = val
		}

		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("error during row iteration: %w", err)
	}

	return result, nil
}
