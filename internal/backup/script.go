package backup

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// writeScript renders the dataset as a SQL script: a comment header, the deletes in reverse
// table order, one commented section of inserts per table and a footer with the row count.
func writeScript(d *Dataset, dl Dialect, now time.Time) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "-- Database Export")
	fmt.Fprintf(&buf, "-- Generated: %s\n", now.UTC().Format(exportDateLayout))
	fmt.Fprintf(&buf, "-- Database: %s\n", dl.Label())
	fmt.Fprintln(&buf, "-- WARNING: running this script deletes all existing data in the exported tables")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "-- Clear existing data")

	for i := len(Order) - 1; i >= 0; i-- {
		fmt.Fprintf(&buf, "DELETE FROM %s;\n", Order[i].Table)
	}

	for _, e := range Order {
		rows := e.rows(d, dl)

		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "-- %s (%d records)\n", e.Title, len(rows))

		columns := strings.Join(e.Columns, ", ")
		for _, values := range rows {
			fmt.Fprintf(&buf, "INSERT INTO %s (%s) VALUES (%s);\n", e.Table, columns, strings.Join(values, ", "))
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "-- Export completed successfully")
	fmt.Fprintf(&buf, "-- Total records: %d\n", d.Records())

	return buf.Bytes()
}
