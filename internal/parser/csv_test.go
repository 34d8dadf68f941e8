package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flights/internal/models"
)

// TestParseCSV tests the main CSV parsing functionality
func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		csvContent  string
		wantFlights int
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid CSV with header",
			csvContent: `destination,number_flight,type_plane
Paris,101,Boeing737
London,202,A320`,
			wantFlights: 2,
		},
		{
			name: "valid CSV without header",
			csvContent: `Paris,101,Boeing737
London,202,A320
Rome,303,A321`,
			wantFlights: 3,
		},
		{
			name: "spaces after commas",
			csvContent: `Destination, Number, Plane Type
Paris, 101, Boeing737`,
			wantFlights: 1,
		},
		{
			name:       "empty CSV file",
			csvContent: ``,
			wantErr:    true,
			errMsg:     "no flights found",
		},
		{
			name:       "header only",
			csvContent: "destination,number_flight,type_plane\n",
			wantErr:    true,
			errMsg:     "no flights found",
		},
		{
			name: "non-integer number",
			csvContent: `destination,number_flight,type_plane
Paris,one-oh-one,Boeing737`,
			wantErr: true,
			errMsg:  "invalid flight number",
		},
		{
			name: "wrong field count",
			csvContent: `Paris,101,Boeing737
London,202`,
			wantErr: true,
			errMsg:  "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempCSVFile(t, tt.csvContent)

			flights, err := ParseCSV(tmpFile)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCSV() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing '%s', got '%s'", tt.errMsg, err.Error())
			}

			if len(flights) != tt.wantFlights {
				t.Errorf("ParseCSV() returned %d flights, want %d", len(flights), tt.wantFlights)
			}
		})
	}
}

// TestParseCSV_MissingFile tests opening a nonexistent file
func TestParseCSV_MissingFile(t *testing.T) {
	_, err := ParseCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil || !strings.Contains(err.Error(), "failed to open CSV file") {
		t.Errorf("Expected open error, got %v", err)
	}
}

// TestReadCSV_PreservesOrderAndText tests field values and row order
func TestReadCSV_PreservesOrderAndText(t *testing.T) {
	flights, err := ReadCSV(strings.NewReader("Москва,7,Ту-204\n\"Paris, CDG\",8,A320\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	expected := []models.Flight{
		{Destination: "Москва", Number: 7, PlaneType: "Ту-204"},
		{Destination: "Paris, CDG", Number: 8, PlaneType: "A320"},
	}
	if len(flights) != len(expected) {
		t.Fatalf("ReadCSV() returned %d flights, want %d", len(flights), len(expected))
	}
	for i := range expected {
		if flights[i] != expected[i] {
			t.Errorf("flight %d = %+v, want %+v", i, flights[i], expected[i])
		}
	}
}

// TestIsHeaderRow tests header row detection
func TestIsHeaderRow(t *testing.T) {
	tests := []struct {
		record   []string
		expected bool
	}{
		{[]string{"destination", "number_flight", "type_plane"}, true},
		{[]string{"Destination", "Flight Number", "Aircraft"}, true},
		{[]string{"Paris", "101", "Boeing737"}, false},
		{[]string{"Paris", "abc", "Boeing737"}, false},
		{[]string{"destination", "number"}, false},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.record, "_"), func(t *testing.T) {
			if got := isHeaderRow(tt.record); got != tt.expected {
				t.Errorf("isHeaderRow(%v) = %v, want %v", tt.record, got, tt.expected)
			}
		})
	}
}

// Helper function to create a temporary CSV file for testing
func createTempCSVFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "flights.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Benchmark test
func BenchmarkReadCSV(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("destination,number_flight,type_plane\n")
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&sb, "Paris,%d,Boeing737\n", i)
	}
	content := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ReadCSV(strings.NewReader(content)); err != nil {
			b.Fatal(err)
		}
	}
}

// Example function
func ExampleReadCSV() {
	flights, err := ReadCSV(strings.NewReader("destination,number_flight,type_plane\nParis,101,Boeing737\n"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("Parsed %d flights\n", len(flights))
	fmt.Println(flights[0])

	// Output:
	// Parsed 1 flights
	// {destination: Paris, number_flight: 101, type_plane: Boeing737}
}
