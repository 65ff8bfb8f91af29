package annotation

import "errors"

// ShapeTypePolygon is the only shape type the converter turns into records.
// Other values ("line", "rectangle", "point", ...) are valid in documents and
// are skipped, not rejected. The comparison is exact and case-sensitive.
const ShapeTypePolygon = "polygon"

// DefaultLabel is substituted when a shape carries no label.
const DefaultLabel = "unknown"

// ErrNoShapes is returned (wrapped) when a document parses as JSON but has no
// top-level shapes list.
var ErrNoShapes = errors.New("annotation: document has no shapes list")

// Shape is one annotated region on an image.
//
// Points is kept in its raw nested-array form: entries are expected to hold
// at least two numbers (x, y) but the labeling tools do not guarantee it.
// Extraction and coercion to integer vertices happens downstream.
type Shape struct {
	// Label is the class name assigned by the annotator. May be empty;
	// use EffectiveLabel for the defaulted value.
	Label string `json:"label"`

	// Points is the ordered vertex list as written by the labeling tool.
	Points [][]float64 `json:"points"`

	// GroupID links shapes that belong to the same object instance.
	// Carried through for completeness; the converter does not use it.
	GroupID *int `json:"group_id,omitempty"`

	// ShapeType declares the geometry kind: "polygon", "rectangle",
	// "line", "point", etc.
	ShapeType string `json:"shape_type"`

	// Flags holds per-shape boolean markers set in the labeling tool.
	Flags map[string]bool `json:"flags,omitempty"`
}

// EffectiveLabel returns the shape's label, or DefaultLabel when absent.
func (s Shape) EffectiveLabel() string {
	if s.Label == "" {
		return DefaultLabel
	}
	return s.Label
}

// IsPolygon reports whether the shape is declared as a polygon.
func (s Shape) IsPolygon() bool {
	return s.ShapeType == ShapeTypePolygon
}

// Document is one annotation file describing all shapes on one source image.
//
// Documents are read once, fully consumed, and discarded; nothing mutates
// them after the loader returns.
type Document struct {
	// Version is the labeling tool version that wrote the file.
	Version string `json:"version,omitempty"`

	// Flags holds document-level boolean markers.
	Flags map[string]bool `json:"flags,omitempty"`

	// Shapes is the ordered list of annotated regions. This is the only
	// field a document must have; the loader rejects documents without it.
	Shapes []Shape `json:"shapes" validate:"required"`

	// ImagePath names the image the annotations belong to, usually
	// relative to the document. Optional; see EffectiveImagePath.
	ImagePath string `json:"imagePath,omitempty"`

	// ImageHeight and ImageWidth are the source image dimensions in
	// pixels, when the tool recorded them.
	ImageHeight int `json:"imageHeight,omitempty"`
	ImageWidth  int `json:"imageWidth,omitempty"`
}
