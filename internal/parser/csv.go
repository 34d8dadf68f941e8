// Package parser provides CSV parsing for bulk flight imports
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"flights/internal/models"
)

// fieldsPerRecord is the column count of a flight row:
// destination, number_flight, type_plane
const fieldsPerRecord = 3

// ParseCSV reads flights from a CSV file.
// Expected CSV format: destination, number_flight, type_plane
// - destination: free-form text
// - number_flight: integer
// - type_plane: free-form text
// A leading header row is detected and skipped.
func ParseCSV(filePath string) ([]models.Flight, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV parses flight rows from r. Rows are returned in input order.
func ReadCSV(r io.Reader) ([]models.Flight, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldsPerRecord
	reader.TrimLeadingSpace = true

	var flights []models.Flight
	lineNumber := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNumber+1, err)
		}

		lineNumber++

		// Skip header row if it exists
		if lineNumber == 1 && isHeaderRow(record) {
			continue
		}

		flight, err := parseFlight(record)
		if err != nil {
			return nil, fmt.Errorf("error parsing line %d: %w", lineNumber, err)
		}

		flights = append(flights, flight)
	}

	if len(flights) == 0 {
		return nil, fmt.Errorf("no flights found in CSV file")
	}

	return flights, nil
}

// parseFlight converts a CSV record into a Flight
func parseFlight(record []string) (models.Flight, error) {
	if len(record) != fieldsPerRecord {
		return models.Flight{}, fmt.Errorf("expected %d fields, got %d", fieldsPerRecord, len(record))
	}

	numberStr := strings.TrimSpace(record[1])
	number, err := strconv.Atoi(numberStr)
	if err != nil {
		return models.Flight{}, fmt.Errorf("invalid flight number '%s': must be an integer", numberStr)
	}

	return models.Flight{
		Destination: record[0],
		Number:      number,
		PlaneType:   record[2],
	}, nil
}

// isHeaderRow reports whether record looks like a column header row.
// A data row always carries an integer in the number column, so a row
// whose number column names a header word is taken as the header.
func isHeaderRow(record []string) bool {
	if len(record) != fieldsPerRecord {
		return false
	}
	if _, err := strconv.Atoi(strings.TrimSpace(record[1])); err == nil {
		return false
	}

	headerLikeCount := 0
	for _, field := range record {
		if isCommonHeaderWord(field) {
			headerLikeCount++
		}
	}
	return headerLikeCount >= 2
}

// isCommonHeaderWord checks if a field is a common flight header word
func isCommonHeaderWord(field string) bool {
	common := []string{"destination", "number", "flight", "type", "plane", "aircraft"}
	lower := strings.ToLower(strings.TrimSpace(field))
	for _, word := range common {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
