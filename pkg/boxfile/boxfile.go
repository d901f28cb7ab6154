// Package boxfile implements parsing, serialization and geometric editing of
// Tesseract boxfile records.
//
// A boxfile pairs OCR text fragments with pixel bounding boxes, one record per
// line, in the form:
//
//	[markers]text left bottom right top page
//
// Coordinates use the image pixel grid with the origin in the bottom-left
// corner. The optional markers '@', '$' and '\'' are prefixed directly onto
// the text and flag it as bold, italic and underlined respectively.
//
// Key Types:
//
// - Box: One decoded boxfile line
// - Direction: Edge or axis selector for Move and Stretch
// - Attribute: One of the three style flags
//
// Main Functions:
//
// - Parse: Decodes a single boxfile line into a Box
// - Box.String: Encodes a Box back into a boxfile line
package boxfile

import "errors"

var (
	// ErrInvalidText indicates that a value cannot be stored as box text
	// because it would not survive a round trip through the line format.
	ErrInvalidText = errors.New("invalid box text")

	// ErrUnknownDirection indicates that a direction name was not recognized.
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrUnknownAttribute indicates that an attribute name was not recognized.
	ErrUnknownAttribute = errors.New("unknown attribute")
)
