package boxfile

import (
	"fmt"
	"strings"
)

// Box is one boxfile record.
// Valid is false when the source line could not be decoded, in which case no
// other field is trustworthy and the box must not take part in geometric
// operations.
type Box struct {
	Text      string // Literal text with the style markers removed
	Left      int    // Left edge in pixels
	Right     int    // Right edge in pixels
	Top       int    // Top edge in pixels, measured from the bottom of the image
	Bottom    int    // Bottom edge in pixels, measured from the bottom of the image
	Page      int    // Zero-based page number in a multi-page image
	Bold      bool   // '@' marker
	Italic    bool   // '$' marker
	Underline bool   // '\'' marker
	Valid     bool   // Set when the line decoded successfully
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b Box) Height() int { return b.Top - b.Bottom }

// Direction selects the edge (for Stretch) or axis (for Move) an edit acts on.
type Direction int

const (
	Left Direction = iota
	Right
	Top
	Bottom
	All
)

var directionNames = [...]string{"left", "right", "top", "bottom", "all"}

func (d Direction) String() string {
	if d < Left || d > All {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps a direction name such as "left" or "ALL" to a Direction.
// The short forms "up" and "down" are accepted for Top and Bottom.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "top", "up", "t", "u":
		return Top, nil
	case "bottom", "down", "b", "d":
		return Bottom, nil
	case "all", "a":
		return All, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Attribute is one of the style flags carried by a box.
type Attribute int

const (
	Bold Attribute = iota
	Italic
	Underline
)

func (a Attribute) String() string {
	switch a {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Marker returns the prefix character encoding the attribute.
func (a Attribute) Marker() byte {
	switch a {
	case Bold:
		return '@'
	case Italic:
		return '$'
	}
	return '\''
}

// ParseAttribute maps an attribute name to an Attribute.
func ParseAttribute(s string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bold", "b", "@":
		return Bold, nil
	case "italic", "i", "$":
		return Italic, nil
	case "underline", "uline", "u", "'":
		return Underline, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, s)
}

// Get reports the value of attribute a on the box.
func (b Box) Get(a Attribute) bool {
	switch a {
	case Bold:
		return b.Bold
	case Italic:
		return b.Italic
	case Underline:
		return b.Underline
	}
	return false
}

// Set assigns the value of attribute a on the box.
func (b *Box) Set(a Attribute, value bool) {
	switch a {
	case Bold:
		b.Bold = value
	case Italic:
		b.Italic = value
	case Underline:
		b.Underline = value
	}
}
