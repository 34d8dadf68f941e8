package flights

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"flights/internal/config"
	"flights/internal/models"
	"flights/internal/storage"
)

// columnWidth is the padded width of each table column
const columnWidth = 15

// Display writes flights to w in the requested format, one record per line
// for the text format. Output stops at the first write error.
func Display(w io.Writer, flights []models.Flight, format string) error {
	switch format {
	case config.FormatText, "":
		return displayText(w, flights)
	case config.FormatTable:
		return displayTable(w, flights)
	case config.FormatJSON:
		data, err := storage.Marshal(flights)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatYAML:
		return displayYAML(w, flights)
	default:
		return fmt.Errorf("unknown display format %q", format)
	}
}

func displayText(w io.Writer, flights []models.Flight) error {
	for i, f := range flights {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return fmt.Errorf("writing flight %d: %w", i, err)
		}
	}
	return nil
}

// displayTable formats flights as a padded table followed by a row count
func displayTable(w io.Writer, flights []models.Flight) error {
	rows := make([][]string, len(flights))
	for i, f := range flights {
		rows[i] = []string{f.Destination, strconv.Itoa(f.Number), f.PlaneType}
	}
	return WriteTable(w, []string{"destination", "number_flight", "type_plane"}, rows)
}

// WriteTable prints a header, a separator line, the padded rows and the
// number of rows.
func WriteTable(w io.Writer, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "%-*s", columnWidth, cell)
		}
		b.WriteString("\n")
	}

	writeRow(columns)
	separator := make([]string, len(columns))
	for i := range separator {
		separator[i] = strings.Repeat("-", columnWidth)
	}
	writeRow(separator)

	for _, row := range rows {
		writeRow(row)
	}
	fmt.Fprintf(&b, "\n(%d rows)\n", len(rows))

	_, err := io.WriteString(w, b.String())
	return err
}

func displayYAML(w io.Writer, flights []models.Flight) error {
	if len(flights) == 0 {
		_, err := fmt.Fprintln(w, "[]")
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(flights); err != nil {
		return fmt.Errorf("encoding flights as yaml: %w", err)
	}
	return enc.Close()
}
