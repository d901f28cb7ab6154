// Package hocr reads and writes hOCR, the HTML format OCR engines such as
// Tesseract use to report recognized words with their positions.
//
// hOCR is used here as an exchange format for boxfiles: ToBoxes turns the
// words of an hOCR document into boxes for a new boxfile, and FromBoxes
// turns edited boxes back into an hOCR document.
//
// The object model keeps the part of the hOCR hierarchy that carries
// positions: Document → Pages → Lines → Words. Content areas and paragraphs
// are flattened while parsing; their lines are kept in document order.
//
// hOCR coordinates have their origin at the top-left corner of the page,
// boxfile coordinates at the bottom-left. The conversions flip the y axis
// using the page height.
//
// Main Functions:
//
// - ParseHOCR: Parses hOCR data from HTML into the object model
// - GenerateHOCRDocument: Generates valid hOCR HTML from the object model
// - ToBoxes, FromBoxes: Convert between hOCR words and boxfile boxes
package hocr
