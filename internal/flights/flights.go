// Package flights implements the in-memory record operations: appending
// new flights, selecting by substring and displaying the result.
package flights

import (
	"strings"

	"flights/internal/models"
)

// Add appends a flight built from the given fields and returns the
// extended slice. Existing records are left untouched.
func Add(flights []models.Flight, destination string, number int, planeType string) []models.Flight {
	return append(flights, models.Flight{
		Destination: destination,
		Number:      number,
		PlaneType:   planeType,
	})
}

// Select returns, in their original order, the flights whose concatenated
// field values contain term. Matching is literal and case-sensitive; an
// empty term matches every flight. The result is never nil.
func Select(flights []models.Flight, term string) []models.Flight {
	result := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		if strings.Contains(f.Values(), term) {
			result = append(result, f)
		}
	}
	return result
}
