package output

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is one row handed to RenderRecords, keyed by field name
type Record map[string]any

// RenderRecords prints records using layout. empty is announced when
// there is nothing to print.
func (f *Formatter) RenderRecords(records []Record, layout Layout, empty string) {
	if layout.Format == "json" {
		f.renderJSON(records)
		return
	}
	if len(records) == 0 {
		f.ScreenReaderText("info", empty)
		return
	}

	switch layout.Format {
	case "list":
		f.renderList(records, layout)
	default:
		f.renderTable(records, layout)
	}
}

func (f *Formatter) renderTable(records []Record, layout Layout) {
	headers := make([]string, len(layout.Columns))
	for i, col := range layout.Columns {
		headers[i] = col.Title
	}

	table := f.Table().Headers(headers...)
	for _, rec := range records {
		row := make([]string, len(layout.Columns))
		for i, col := range layout.Columns {
			row[i] = applyFieldTransform(formatField(rec[col.Field]), col.Transform)
		}
		table.Row(row...)
	}
	table.Print()
}

func (f *Formatter) renderList(records []Record, layout Layout) {
	for _, rec := range records {
		var parts []string
		for _, col := range layout.Columns {
			if value := applyFieldTransform(formatField(rec[col.Field]), col.Transform); value != "" {
				parts = append(parts, value)
			}
		}
		f.List("%s", strings.Join(parts, " - "))
	}
}

// renderJSON ignores the quiet level.
func (f *Formatter) renderJSON(records []Record) {
	for _, rec := range records {
		if data, err := json.Marshal(rec); err == nil {
			fmt.Fprintln(f.writer, string(data))
		}
	}
}
