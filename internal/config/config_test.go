package config

import (
	"testing"
)

// TestConfigConstants tests that the configuration constants are properly defined
func TestConfigConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "AppName should be flights",
			value:    AppName,
			expected: "flights",
		},
		{
			name:     "Version should be 0.1.0",
			value:    Version,
			expected: "0.1.0",
		},
		{
			name:     "LogFile should be flights.log",
			value:    LogFile,
			expected: "flights.log",
		},
		{
			name:     "DefaultDatabaseFile should be flights.db",
			value:    DefaultDatabaseFile,
			expected: "flights.db",
		},
		{
			name:     "JSONIndent should be four spaces",
			value:    JSONIndent,
			expected: "    ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.value)
			}
		})
	}
}

// TestDescriptionsNotEmpty ensures flag help texts are set
func TestDescriptionsNotEmpty(t *testing.T) {
	for _, d := range []string{DataFileDescription, DatabaseFileDescription, TableNameDescription, FormatDescription} {
		if d == "" {
			t.Error("flag description should not be empty")
		}
	}
}
