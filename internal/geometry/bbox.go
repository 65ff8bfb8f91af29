package geometry

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// BoundingBox represents an axis-aligned rectangle in pixel coordinates.
//
// The convention follows the exported record layout:
//   - (ColX, RowY) is the top-left corner
//   - Width and Height are the horizontal and vertical extents
//
// Width and Height are always >= 0 for boxes produced by BoundingBoxOf.
type BoundingBox struct {
	ColX   int `json:"col_x"`  // Left edge
	RowY   int `json:"row_y"`  // Top edge
	Width  int `json:"width"`  // Horizontal extent (max x - min x)
	Height int `json:"height"` // Vertical extent (max y - min y)
}

// Area returns the box area in square pixels (Width × Height).
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// Degenerate reports whether the box has zero (or negative) width or height.
//
// A degenerate box arises from vertex sets that collapse to a point or a
// horizontal/vertical line, and from the empty-input sentinel. Degenerate
// boxes are never emitted as output records.
func (b BoundingBox) Degenerate() bool {
	return b.Width <= 0 || b.Height <= 0
}

// BoundingBoxOf computes the minimal axis-aligned bounding box enclosing all
// the given points.
//
// Parameters:
//   - points: Ordered vertex list. May be empty.
//
// Returns the zero-value box (0,0,0,0) for an empty input. For a single point
// the box is (x, y, 0, 0) — a legitimately zero-sized box, distinct in
// meaning from the empty-input sentinel even though both are degenerate.
func BoundingBoxOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	return BoundingBox{
		ColX:   minX,
		RowY:   minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
