// Package report renders conversion results for humans and for export.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/developerZohab/Roman-Numeral-Converter/internal/roman"
	"github.com/developerZohab/Roman-Numeral-Converter/internal/scan"
	"github.com/developerZohab/Roman-Numeral-Converter/internal/store"
)

// csvHeader is the fixed column order for history exports.
var csvHeader = []string{"input", "output", "direction", "historical", "created_at"}

// WriteCSV serializes conversion records as CSV with every field quoted.
//
// All fields are quoted unconditionally (encoding/csv only quotes when
// forced to, and downstream spreadsheet imports rely on uniform quoting).
// Embedded quotes are doubled per RFC 4180.
func WriteCSV(w io.Writer, records []store.Record) error {
	if err := writeCSVRow(w, csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Input,
			rec.Output,
			string(rec.Direction),
			fmt.Sprintf("%t", rec.Historical),
			rec.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writeCSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVRow writes one force-quoted CSV row.
func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := io.WriteString(w, strings.Join(quoted, ",")+"\r\n"); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// FormatBatchSummary renders batch outcomes as human-readable text:
// one line per item followed by a success/failure count.
func FormatBatchSummary(outcomes []roman.Outcome) string {
	var b strings.Builder
	succeeded := 0
	for i, out := range outcomes {
		if out.OK {
			succeeded++
			fmt.Fprintf(&b, "%d. %s -> %s\n", i+1, out.Input, out.Output)
			continue
		}
		fmt.Fprintf(&b, "%d. %s -> FAILED: %s\n", i+1, out.Input, out.Err)
	}
	fmt.Fprintf(&b, "%d of %d converted\n", succeeded, len(outcomes))
	return b.String()
}

// FormatScanSummary renders a document scan summary as human-readable text.
func FormatScanSummary(sum scan.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d substitution(s)\n", sum.Replacements)
	if len(sum.Failures) > 0 {
		fmt.Fprintf(&b, "%d failure(s):\n", len(sum.Failures))
		for _, f := range sum.Failures {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	return b.String()
}

// FormatHistoryTable renders history records as aligned text rows,
// most recent first (the order ReadRecent returns).
func FormatHistoryTable(records []store.Record) string {
	if len(records) == 0 {
		return "no conversions recorded\n"
	}
	var b strings.Builder
	for _, rec := range records {
		mode := ""
		if rec.Historical {
			mode = " (historical)"
		}
		fmt.Fprintf(&b, "%s  %-12s  %s -> %s%s\n",
			rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			rec.Direction,
			rec.Input,
			rec.Output,
			mode,
		)
	}
	return b.String()
}
