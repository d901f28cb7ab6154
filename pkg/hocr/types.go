package hocr

// HOCR represents the entire hOCR document structure
type HOCR struct {
	Title    string            // Document title
	Language string            // Document language
	Metadata map[string]string // ocr-system and other meta tags
	Pages    []Page            // Pages in the document
}

// Page is one page of recognized text
// Corresponds to hOCR element with class: 'ocr_page'
type Page struct {
	ID         string      // Unique identifier
	PageNumber int         // ppageno property
	ImageName  string      // Source image filename
	BBox       BoundingBox // Page coordinates
	Lines      []Line      // Lines in document order
}

// Class assign 'ocr_page' to 'Page' struct
func (Page) Class() string { return "ocr_page" }

// Height returns the page height, or 0 if the page has no bbox.
func (p Page) Height() int { return p.BBox.Height() }

// Line represents a line of text
// Corresponds to hOCR element with class: 'ocr_line'
type Line struct {
	ID       string      // Unique identifier
	BBox     BoundingBox // Line coordinates
	Baseline string      // Baseline information
	Words    []Word      // Words in this line
}

// Class assign 'ocr_line' to 'Line' struct
func (Line) Class() string { return "ocr_line" }

// Word is a recognized word with bounding box
// Corresponds to hOCR element with class: 'ocrx_word'
type Word struct {
	ID         string      // Unique identifier
	Text       string      // The actual text content
	BBox       BoundingBox // Word coordinates
	Confidence float64     // Recognition confidence (0-100)
	Bold       bool        // Text was wrapped in <strong> or <b>
	Italic     bool        // Text was wrapped in <em> or <i>
	Underline  bool        // Text was wrapped in <u>
}

// Class assign 'ocrx_word' to 'Word' struct
func (Word) Class() string { return "ocrx_word" }

// BoundingBox is an hOCR 'bbox' property: a rectangle in image pixels with
// the origin at the top-left corner.
type BoundingBox struct {
	X1 int // Left coordinate
	Y1 int // Top coordinate
	X2 int // Right coordinate
	Y2 int // Bottom coordinate
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() int { return b.Y2 - b.Y1 }

// IsZero reports whether the box is unset.
func (b BoundingBox) IsZero() bool { return b == BoundingBox{} }

// Union returns the smallest box containing b and o. A zero box is ignored.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if b.IsZero() {
		return o
	}
	if o.IsZero() {
		return b
	}
	return BoundingBox{
		X1: min(b.X1, o.X1),
		Y1: min(b.Y1, o.Y1),
		X2: max(b.X2, o.X2),
		Y2: max(b.Y2, o.Y2),
	}
}
