package convert

import (
	"github.com/ironsheep/annotation-tools/internal/annotation"
	"github.com/ironsheep/annotation-tools/internal/geometry"
)

// Record is one exported bounding box. Field order matches the columns of
// the tabular output: filename,col_x,row_y,width,height,label.
type Record struct {
	// Filename is the source image the box belongs to, resolved from the
	// annotation document.
	Filename string `json:"filename"`

	// ColX and RowY are the top-left corner of the box.
	ColX int `json:"col_x"`
	RowY int `json:"row_y"`

	// Width and Height are the box extents; always > 0 in emitted records.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Label is the annotated class name, "unknown" when the shape had none.
	Label string `json:"label"`
}

// Stats counts shapes dropped per reason while converting. The three causes
// all produce the same outcome (no record) but mean different things when
// debugging a dataset.
type Stats struct {
	// NonPolygon counts shapes whose declared type was not "polygon".
	NonPolygon int

	// NoPoints counts polygons with no usable vertices after extraction.
	NoPoints int

	// Degenerate counts polygons whose bounding box collapsed to zero
	// width or height.
	Degenerate int
}

// Total returns the number of shapes dropped for any reason.
func (s Stats) Total() int {
	return s.NonPolygon + s.NoPoints + s.Degenerate
}

// Add accumulates counters from another Stats.
func (s *Stats) Add(other Stats) {
	s.NonPolygon += other.NonPolygon
	s.NoPoints += other.NoPoints
	s.Degenerate += other.Degenerate
}

// ExtractPoints returns the shape's vertices as integer points.
//
// Raw entries with fewer than two components are dropped silently; for the
// rest, the first two components are truncated toward zero and taken as
// (x, y). Order and duplicates are preserved. A shape without a points field
// yields an empty slice, not an error.
func ExtractPoints(shape annotation.Shape) []geometry.Point {
	if len(shape.Points) == 0 {
		return nil
	}

	points := make([]geometry.Point, 0, len(shape.Points))
	for _, raw := range shape.Points {
		if len(raw) < 2 {
			continue
		}
		points = append(points, geometry.Point{X: int(raw[0]), Y: int(raw[1])})
	}
	return points
}

// Document converts one annotation document into its bounding-box records.
//
// Parameters:
//   - doc: The parsed document. Must not be nil.
//   - filename: The resolved image filename every record is tagged with
//     (see annotation.EffectiveImagePath).
//
// Returns the records in shape-list order and the per-reason counts of
// shapes that produced no record. Conversion itself cannot fail: malformed
// vertices and degenerate geometry are drop conditions, not errors.
func Document(doc *annotation.Document, filename string) ([]Record, Stats) {
	var stats Stats
	records := make([]Record, 0, len(doc.Shapes))

	for _, shape := range doc.Shapes {
		if !shape.IsPolygon() {
			stats.NonPolygon++
			continue
		}

		points := ExtractPoints(shape)
		if len(points) == 0 {
			stats.NoPoints++
			continue
		}

		box := geometry.BoundingBoxOf(points)
		if box.Degenerate() {
			stats.Degenerate++
			continue
		}

		records = append(records, Record{
			Filename: filename,
			ColX:     box.ColX,
			RowY:     box.RowY,
			Width:    box.Width,
			Height:   box.Height,
			Label:    shape.EffectiveLabel(),
		})
	}

	return records, stats
}
