package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flights/internal/models"
)

func TestLoad_MissingFile(t *testing.T) {
	flights, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		flights []models.Flight
	}{
		{name: "empty", flights: []models.Flight{}},
		{name: "single", flights: []models.Flight{{Destination: "Paris", Number: 101, PlaneType: "Boeing737"}}},
		{
			name: "order and duplicates preserved",
			flights: []models.Flight{
				{Destination: "Rome", Number: 5, PlaneType: "A320"},
				{Destination: "Paris", Number: 5, PlaneType: "A321"},
				{Destination: "Ставрополь", Number: 12, PlaneType: "Ту-154"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "flights.json")
			require.NoError(t, Save(path, tt.flights))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.flights, loaded)
		})
	}
}

func TestSave_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	flights := []models.Flight{{Destination: "Paris", Number: 101, PlaneType: "Boeing737"}}
	require.NoError(t, Save(path, flights))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `[
    {
        "destination": "Paris",
        "number_flight": 101,
        "type_plane": "Boeing737"
    }
]`
	assert.Equal(t, expected, string(data))
}

func TestSave_LiteralText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	require.NoError(t, Save(path, []models.Flight{{Destination: "Санкт-Петербург", Number: 1, PlaneType: "A&B<C>"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Санкт-Петербург"`)
	assert.Contains(t, string(data), `"A&B<C>"`)
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.json")
	require.NoError(t, Save(path, []models.Flight{
		{Destination: "A", Number: 1, PlaneType: "X"},
		{Destination: "B", Number: 2, PlaneType: "Y"},
	}))
	require.NoError(t, Save(path, []models.Flight{{Destination: "C", Number: 3, PlaneType: "Z"}}))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Flight{{Destination: "C", Number: 3, PlaneType: "Z"}}, loaded)
}

func TestSave_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "flights.json")
	err := Save(path, []models.Flight{})
	assert.Error(t, err)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "malformed JSON", content: `[{"destination": "Paris",`},
		{name: "empty file", content: ``},
		{name: "not an array", content: `{"destination": "Paris"}`},
		{name: "missing destination", content: `[{"number_flight": 1, "type_plane": "A320"}]`, errMsg: "missing destination"},
		{name: "missing number", content: `[{"destination": "Paris", "type_plane": "A320"}]`, errMsg: "missing number_flight"},
		{name: "missing type", content: `[{"destination": "Paris", "number_flight": 1}]`, errMsg: "missing type_plane"},
		{name: "non-integer number", content: `[{"destination": "Paris", "number_flight": "one", "type_plane": "A320"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "flights.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			flights, err := Load(path)
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			assert.NotNil(t, flights)
			assert.Empty(t, flights)
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	flights, err := Load(t.TempDir())
	assert.Error(t, err)
	assert.Empty(t, flights)
}
