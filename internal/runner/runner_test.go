package runner

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/annotation-tools/internal/config"
)

// newTestLogger returns a quiet logger so test output stays readable.
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// writeFile writes one annotation document into dir.
func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	return rows
}

func TestRun(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "doc.json", `{
		"shapes": [
			{"label": "QSBD", "points": [[64, 10], [64, 15], [67, 15], [68, 14], [68, 10]], "shape_type": "polygon"},
			{"label": "QSBD", "points": [[64, 26], [68, 26], [78, 33], [64, 29]], "shape_type": "polygon"}
		],
		"imagePath": "test_image.png"
	}`)

	output := filepath.Join(t.TempDir(), "out.csv")
	summary, err := Run(config.Config{InputDir: inputDir, Output: output}, newTestLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.FilesSeen != 1 || summary.FilesFailed != 0 {
		t.Errorf("unexpected file counts: %+v", summary)
	}
	if !summary.OutputWritten {
		t.Fatal("output should have been written")
	}

	rows := readCSV(t, output)
	want := [][]string{
		{"filename", "col_x", "row_y", "width", "height", "label"},
		{"test_image.png", "64", "10", "4", "5", "QSBD"},
		{"test_image.png", "64", "26", "14", "7", "QSBD"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("unexpected output:\n got %v\nwant %v", rows, want)
	}
}

func TestRun_MultipleDocumentsSortedOrder(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "b.json", `{"shapes": [
		{"label": "B", "points": [[0, 0], [0, 2], [2, 2]], "shape_type": "polygon"}
	]}`)
	writeFile(t, inputDir, "a.json", `{"shapes": [
		{"label": "A", "points": [[0, 0], [0, 2], [2, 2]], "shape_type": "polygon"}
	]}`)

	output := filepath.Join(t.TempDir(), "out.csv")
	summary, err := Run(config.Config{InputDir: inputDir, Output: output}, newTestLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(summary.Records) != 2 {
		t.Fatalf("unexpected record count: got %d, want 2", len(summary.Records))
	}
	if summary.Records[0].Label != "A" || summary.Records[1].Label != "B" {
		t.Errorf("documents should be processed in sorted order: %+v", summary.Records)
	}
	if summary.Records[0].Filename != "a.png" {
		t.Errorf("fallback filename should derive from the document stem: %q", summary.Records[0].Filename)
	}
}

func TestRun_SkipsBrokenDocuments(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "broken.json", `{"shapes": [`)
	writeFile(t, inputDir, "bare.json", `{"imagePath": "x.png"}`)
	writeFile(t, inputDir, "good.json", `{"shapes": [
		{"label": "OK", "points": [[0, 0], [0, 2], [2, 2]], "shape_type": "polygon"}
	]}`)

	output := filepath.Join(t.TempDir(), "out.csv")
	summary, err := Run(config.Config{InputDir: inputDir, Output: output}, newTestLogger())
	if err != nil {
		t.Fatalf("broken documents must never abort the run: %v", err)
	}

	if summary.FilesSeen != 3 || summary.FilesFailed != 2 {
		t.Errorf("unexpected file counts: %+v", summary)
	}
	if len(summary.Records) != 1 || summary.Records[0].Label != "OK" {
		t.Errorf("unexpected records: %+v", summary.Records)
	}
}

func TestRun_NoRecordsWritesNoFile(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "lines.json", `{"shapes": [
		{"label": "L", "points": [[1, 1], [2, 2]], "shape_type": "line"}
	]}`)

	output := filepath.Join(t.TempDir(), "out.csv")
	summary, err := Run(config.Config{InputDir: inputDir, Output: output}, newTestLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.OutputWritten {
		t.Error("no output file should be produced for zero records")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output file should not exist, stat err: %v", err)
	}
	if summary.Skipped.NonPolygon != 1 {
		t.Errorf("unexpected skip stats: %+v", summary.Skipped)
	}
}

func TestRun_MissingInputDir(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.csv")
	cfg := config.Config{InputDir: filepath.Join(t.TempDir(), "nope"), Output: output}

	summary, err := Run(cfg, newTestLogger())
	if err != nil {
		t.Fatalf("a missing input directory is informational, not fatal: %v", err)
	}
	if summary.FilesSeen != 0 || summary.OutputWritten {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestRun_EmptyInputDir(t *testing.T) {
	cfg := config.Config{InputDir: t.TempDir(), Output: filepath.Join(t.TempDir(), "out.csv")}

	summary, err := Run(cfg, newTestLogger())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.FilesSeen != 0 || summary.OutputWritten {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestRun_ForcedFormat(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "doc.json", `{"shapes": [
		{"label": "OK", "points": [[0, 0], [0, 2], [2, 2]], "shape_type": "polygon"}
	]}`)

	// Output named .dat but format forced to TSV.
	output := filepath.Join(t.TempDir(), "out.dat")
	cfg := config.Config{InputDir: inputDir, Output: output, Format: "tsv"}

	if _, err := Run(cfg, newTestLogger()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "filename\tcol_x") {
		t.Errorf("expected TSV output, got %q", string(data))
	}
}

func TestRun_InvalidForcedFormat(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "doc.json", `{"shapes": [
		{"label": "OK", "points": [[0, 0], [0, 2], [2, 2]], "shape_type": "polygon"}
	]}`)

	cfg := config.Config{
		InputDir: inputDir,
		Output:   filepath.Join(t.TempDir(), "out.csv"),
		Format:   "parquet",
	}

	if _, err := Run(cfg, newTestLogger()); err == nil {
		t.Fatal("an unknown forced format should fail the run")
	}
}
