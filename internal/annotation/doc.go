// Package annotation defines the on-disk document model produced by polygon
// labeling tools and the loader that reads it.
//
// # Document Format
//
// One JSON document describes all shapes drawn on one source image:
//
//	{
//	  "version": "4.5.6",
//	  "flags": {},
//	  "shapes": [
//	    {
//	      "label": "QSBD",
//	      "points": [[64, 10], [64, 15], [67, 15]],
//	      "group_id": null,
//	      "shape_type": "polygon",
//	      "flags": {}
//	    }
//	  ],
//	  "imagePath": "page_004.png",
//	  "imageHeight": 1200,
//	  "imageWidth": 900
//	}
//
// The format is permissive: every field except "shapes" is optional, vertex
// coordinates may be floats, and individual vertex entries may be malformed.
// Validation and defaulting happen here at the parse boundary so downstream
// code can trust the struct it receives.
//
// # Error Handling
//
// ReadFile returns a wrapped error for unreadable or undecodable files, and
// wraps ErrNoShapes when the document parses but lacks the top-level shapes
// list. Both cases are skip-and-continue conditions for batch callers, never
// fatal.
//
// Embedded image data ("imageData") is intentionally not modeled: documents
// can carry megabytes of base64 pixels that this tool never looks at.
package annotation
