// Package export serializes bounding-box records to tabular files.
//
// Four formats are supported: CSV (the default), TSV, JSON Lines, and XLSX.
// All of them carry the same six fields per record, in the same order:
//
//	filename, col_x, row_y, width, height, label
//
// CSV and TSV include a header row and apply standard quoting to the
// filename and label fields. JSONL writes one object per line with
// snake_case keys matching the header. XLSX writes a single "annotations"
// sheet with the header as its first row.
package export
