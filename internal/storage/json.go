// Package storage persists flight records as a single JSON array file.
// The whole file is read at load time and rewritten wholesale on save.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"flights/internal/config"
	"flights/internal/models"
)

// fileFlight mirrors models.Flight with pointer fields so that absent keys
// can be told apart from zero values.
type fileFlight struct {
	Destination *string `json:"destination"`
	Number      *int    `json:"number_flight"`
	PlaneType   *string `json:"type_plane"`
}

// Load reads all flights from a JSON array file.
// A nonexistent file yields an empty slice and no error. On any read or
// parse failure the returned slice is empty (never nil) and the error
// describes the failure.
func Load(path string) ([]models.Flight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Flight{}, nil
		}
		return []models.Flight{}, fmt.Errorf("reading flights file: %w", err)
	}

	flights, err := Unmarshal(data)
	if err != nil {
		return []models.Flight{}, fmt.Errorf("parsing flights file %s: %w", path, err)
	}
	return flights, nil
}

// Unmarshal decodes a JSON array of flight objects, requiring every object
// to carry all three keys.
func Unmarshal(data []byte) ([]models.Flight, error) {
	var raw []fileFlight
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	flights := make([]models.Flight, 0, len(raw))
	for i, r := range raw {
		switch {
		case r.Destination == nil:
			return nil, fmt.Errorf("record %d: missing destination", i)
		case r.Number == nil:
			return nil, fmt.Errorf("record %d: missing number_flight", i)
		case r.PlaneType == nil:
			return nil, fmt.Errorf("record %d: missing type_plane", i)
		}
		flights = append(flights, models.Flight{
			Destination: *r.Destination,
			Number:      *r.Number,
			PlaneType:   *r.PlaneType,
		})
	}
	return flights, nil
}

// Marshal encodes flights as an indented JSON array. Non-ASCII and
// HTML-significant characters are written literally. A nil slice encodes
// as an empty array.
func Marshal(flights []models.Flight) ([]byte, error) {
	if flights == nil {
		flights = []models.Flight{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", config.JSONIndent)
	if err := enc.Encode(flights); err != nil {
		return nil, fmt.Errorf("encoding flights: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Save writes all flights to path, replacing any existing content.
func Save(path string, flights []models.Flight) error {
	data, err := Marshal(flights)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing flights file: %w", err)
	}
	return nil
}
