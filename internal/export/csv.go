// Package export renders collections and reports as comma-delimited
// text for download. Only values containing a comma or a quote are
// wrapped, internal quotes are doubled, and rows are joined without a
// trailing newline, so encoding/csv does not fit here.
package export

import (
	"io"
	"strings"
)

// Field is a single column/value pair
type Field struct {
	Column string
	Value  string
}

// Record is an ordered row; the first record of a document defines the
// column set for every row.
type Record []Field

// WriteCSV renders the records. Empty input writes nothing at all, not
// even a header line.
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	var b strings.Builder

	for i, field := range records[0] {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(field.Column))
	}

	for _, record := range records {
		b.WriteByte('\n')
		for i, field := range record {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape(field.Value))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escape(value string) string {
	if strings.ContainsAny(value, ",\"") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
