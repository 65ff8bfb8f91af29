package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/ironsheep/annotation-tools/internal/convert"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format identifies an output serialization.
type Format int

const (
	// FormatCSV writes comma-separated values with a header row.
	FormatCSV Format = iota
	// FormatTSV writes tab-separated values with a header row.
	FormatTSV
	// FormatJSONL writes one JSON object per line.
	FormatJSONL
	// FormatXLSX writes a single-sheet Excel workbook.
	FormatXLSX
)

// Header lists the output columns in order. CSV/TSV use it verbatim as the
// header row; JSONL keys and XLSX headers match it.
var Header = []string{"filename", "col_x", "row_y", "width", "height", "label"}

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatJSONL:
		return "jsonl"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for the format.
func (f Format) FileExtension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	case FormatJSONL:
		return ".jsonl"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ".txt"
	}
}

// ParseFormat maps a format name to its Format value. Matching is
// case-insensitive and accepts a leading dot, so both "CSV" and ".csv" work.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "csv":
		return FormatCSV, nil
	case "tsv":
		return FormatTSV, nil
	case "jsonl":
		return FormatJSONL, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return FormatCSV, fmt.Errorf("unknown export format %q", name)
	}
}

// FormatForPath picks the format matching a path's extension, falling back
// to CSV for unrecognized or missing extensions.
func FormatForPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatCSV
	}
	return f
}

// Write serializes records to path in the given format.
//
// The file is created (or truncated) even when records is empty, producing a
// header-only table; callers that want the no-file-on-zero-records behavior
// check the record count before calling.
func Write(path string, format Format, records []convert.Record) error {
	switch format {
	case FormatCSV:
		return writeSeparated(path, ',', records)
	case FormatTSV:
		return writeSeparated(path, '\t', records)
	case FormatJSONL:
		return writeJSONL(path, records)
	case FormatXLSX:
		return writeXLSX(path, records)
	default:
		return fmt.Errorf("unknown export format %d", format)
	}
}

func writeSeparated(path string, delimiter rune, records []convert.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := csv.NewWriter(f)
	w.Comma = delimiter

	if err := w.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Filename,
			strconv.Itoa(r.ColX),
			strconv.Itoa(r.RowY),
			strconv.Itoa(r.Width),
			strconv.Itoa(r.Height),
			r.Label,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return f.Close()
}

func writeJSONL(path string, records []convert.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return f.Close()
}
