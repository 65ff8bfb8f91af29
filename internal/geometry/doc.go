// Package geometry provides the primitive coordinate types used throughout
// the annotation conversion pipeline.
//
// # Coordinate System
//
// All coordinates follow the standard image convention:
//   - Origin (0, 0) at the top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Coordinates are plain integers in pixel space. Annotation tools commonly
// store vertices as floating-point values; callers are expected to truncate
// toward zero before constructing a Point, matching the behavior of the
// labeling tools this package consumes data from.
//
// # Bounding Boxes
//
// A BoundingBox is expressed as (ColX, RowY, Width, Height) rather than as a
// corner pair. ColX/RowY is the top-left corner, and Width/Height are the
// extents, so the bottom-right corner is (ColX+Width, RowY+Height). This
// matches the column layout of the exported tabular records.
//
// BoundingBoxOf reduces a vertex list to its minimal enclosing axis-aligned
// box. The zero-value box (0,0,0,0) is returned for an empty vertex list as a
// sentinel; callers that need to distinguish "empty input" from a legitimate
// single-point box at the origin must check the input length themselves.
package geometry
