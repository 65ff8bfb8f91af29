// Package runner drives one end-to-end conversion: scan a directory of
// annotation documents, convert each to bounding-box records, and export the
// combined result as a single tabular file.
//
// The run is best-effort and fully sequential. A document that cannot be
// read or parsed is logged and contributes zero records; processing always
// continues with the remaining documents. The only failure the runner
// reports as an error is one that prevents the combined output from being
// produced at all (an invalid forced format, or the output file itself
// failing to write).
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/annotation-tools/internal/annotation"
	"github.com/ironsheep/annotation-tools/internal/config"
	"github.com/ironsheep/annotation-tools/internal/convert"
	"github.com/ironsheep/annotation-tools/internal/export"
)

// Summary reports what one run saw and produced.
type Summary struct {
	// FilesSeen is the number of annotation documents found.
	FilesSeen int

	// FilesFailed is the number of documents skipped because they could
	// not be read, decoded, or lacked a shapes list.
	FilesFailed int

	// Records holds every exported record, in document-then-shape order.
	Records []convert.Record

	// Skipped aggregates per-reason shape skip counts across all documents.
	Skipped convert.Stats

	// OutputWritten reports whether the output file was produced. It is
	// false when the run yielded zero records: matching the established
	// behavior of this tool, no file is written in that case.
	OutputWritten bool
}

// Run executes one conversion over cfg.InputDir and writes the combined
// records to cfg.Output.
//
// Documents are processed in sorted filename order; record order within a
// document follows its shape list. Per-document failures are logged, counted
// in the Summary, and never abort the run.
func Run(cfg config.Config, log *logrus.Logger) (*Summary, error) {
	summary := &Summary{}

	if info, err := os.Stat(cfg.InputDir); err != nil || !info.IsDir() {
		log.WithField("dir", cfg.InputDir).Info("input directory does not exist, nothing to do")
		return summary, nil
	}

	files, err := filepath.Glob(filepath.Join(cfg.InputDir, "*.json"))
	if err != nil {
		return summary, fmt.Errorf("failed to scan input directory: %w", err)
	}
	if len(files) == 0 {
		log.WithField("dir", cfg.InputDir).Info("no annotation documents found")
		return summary, nil
	}

	log.WithField("count", len(files)).Infof("found %d annotation documents to process", len(files))
	summary.FilesSeen = len(files)

	for _, file := range files {
		records, stats, err := processFile(file)
		if err != nil {
			summary.FilesFailed++
			if errors.Is(err, annotation.ErrNoShapes) {
				log.WithField("file", filepath.Base(file)).Warn("document has no shapes list, skipping")
			} else {
				log.WithError(err).WithField("file", filepath.Base(file)).Error("failed to process document, skipping")
			}
			continue
		}

		summary.Records = append(summary.Records, records...)
		summary.Skipped.Add(stats)
		log.WithFields(logrus.Fields{
			"file":    filepath.Base(file),
			"records": len(records),
			"skipped": stats.Total(),
		}).Info("processed document")
	}

	if len(summary.Records) == 0 {
		log.Warn("no bounding boxes found, output file not written")
		return summary, nil
	}

	format := export.FormatForPath(cfg.Output)
	if cfg.Format != "" {
		format, err = export.ParseFormat(cfg.Format)
		if err != nil {
			return summary, err
		}
	}

	if err := export.Write(cfg.Output, format, summary.Records); err != nil {
		return summary, err
	}
	summary.OutputWritten = true

	log.WithFields(logrus.Fields{
		"output":  cfg.Output,
		"format":  format.String(),
		"records": len(summary.Records),
		"skipped": summary.Skipped.Total(),
	}).Info("conversion complete")

	return summary, nil
}

// processFile converts a single annotation document to records.
func processFile(path string) ([]convert.Record, convert.Stats, error) {
	doc, err := annotation.ReadFile(path)
	if err != nil {
		return nil, convert.Stats{}, err
	}

	filename := annotation.EffectiveImagePath(doc, path)
	records, stats := convert.Document(doc, filename)
	return records, stats, nil
}
