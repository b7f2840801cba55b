package table

import (
	"io"
	"strings"
)

// ExportFilename is the default name suggested for an exported file.
const ExportFilename = "table-export.csv"

// CSV serializes rows against the given columns: one header row of
// column headers, then one line per row, comma-joined, with no trailing
// newline. Pass the visible columns and the already filtered/sorted rows
// so the export matches what the table shows. A value containing a comma
// is wrapped in double quotes; embedded quotes are not escaped. That
// matches the on-screen table's export exactly and is a documented
// limitation, not something to fix here silently.
func CSV[T any](rows []T, cols []Column[T]) string {
	var b strings.Builder

	for i, col := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvField(col.Header))
	}
	for _, row := range rows {
		b.WriteByte('\n')
		for i, col := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvField(Format(col.Value(row))))
		}
	}
	return b.String()
}

// WriteCSV writes the CSV serialization to w.
func WriteCSV[T any](w io.Writer, rows []T, cols []Column[T]) error {
	_, err := io.WriteString(w, CSV(rows, cols))
	return err
}

func csvField(v string) string {
	if strings.Contains(v, ",") {
		return `"` + v + `"`
	}
	return v
}
