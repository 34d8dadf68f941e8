// Package models defines the data structures used throughout the application
package models

import (
	"fmt"
	"strconv"
)

// Flight is one flight record as stored in the data file
type Flight struct {
	Destination string `db:"destination" json:"destination" yaml:"destination"`
	Number      int    `db:"number_flight" json:"number_flight" yaml:"number_flight"`
	PlaneType   string `db:"type_plane" json:"type_plane" yaml:"type_plane"`
}

// String returns the one-line form used by the text display format
func (f Flight) String() string {
	return fmt.Sprintf("{destination: %s, number_flight: %d, type_plane: %s}",
		f.Destination,
		f.Number,
		f.PlaneType)
}

// Values returns the field values concatenated in field order, without
// separators or field names. The flight number appears as decimal text.
func (f Flight) Values() string {
	return f.Destination + strconv.Itoa(f.Number) + f.PlaneType
}
