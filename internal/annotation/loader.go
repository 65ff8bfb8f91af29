package annotation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// validate checks decoded documents at the parse boundary. Struct-level
// validation is stateless and safe for concurrent use.
var validate = validator.New()

// ReadFile loads and validates one annotation document.
//
// Parameters:
//   - path: Path to a JSON annotation file.
//
// Returns:
//   - *Document: The decoded document. Optional fields keep their zero
//     values; defaulting is the caller's concern (EffectiveLabel,
//     EffectiveImagePath).
//   - error: Non-nil if the file cannot be read, is not valid JSON, or has
//     no top-level shapes list (wraps ErrNoShapes in that case).
//
// A document with a present but empty shapes list is valid and simply yields
// no records downstream.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotation file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode annotation file %s: %w", filepath.Base(path), err)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoShapes)
	}

	return &doc, nil
}

// EffectiveImagePath resolves the image filename records from this document
// are tagged with.
//
// The document's own imagePath field wins when present. Otherwise the name
// falls back to the document's stem with a ".png" extension, so records from
// "scans/page_004.json" are tagged "page_004.png".
func EffectiveImagePath(doc *Document, docPath string) string {
	if doc.ImagePath != "" {
		return doc.ImagePath
	}
	base := filepath.Base(docPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".png"
}
