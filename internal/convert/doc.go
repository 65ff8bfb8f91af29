// Package convert reduces annotation documents to flat bounding-box records.
//
// The pipeline has three stages, applied per shape in document order:
//
//  1. Filter: only shapes declared "polygon" are considered.
//  2. Extract: raw nested-array vertices become integer points, dropping
//     malformed entries (fewer than two components) and truncating floats
//     toward zero.
//  3. Reduce: the vertex list collapses to its minimal axis-aligned
//     bounding box; shapes whose box has zero width or height are dropped.
//
// Every surviving shape yields exactly one Record tagged with the document's
// resolved image filename. Shapes can be dropped for three distinct reasons
// (wrong type, no usable vertices, degenerate box); Stats keeps a counter per
// reason so a run can report why records went missing without changing the
// output itself.
package convert
