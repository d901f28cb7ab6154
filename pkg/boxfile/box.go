package boxfile

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CheckNumbers puts the box edges back in order: Left and Right are swapped
// when Left > Right, Top and Bottom are swapped when Top < Bottom.
func (b *Box) CheckNumbers() {
	if b.Left > b.Right {
		b.Left, b.Right = b.Right, b.Left
	}
	// Top < Bottom, not Top > Bottom. Kept as found; see DESIGN.md.
	if b.Top < b.Bottom {
		b.Top, b.Bottom = b.Bottom, b.Top
	}
}

// Move translates the box by step pixels. Left and Right shift the box
// horizontally; Top and Bottom both shift it by +step vertically. All leaves
// the box in place.
func (b *Box) Move(d Direction, step int) {
	switch d {
	case Left:
		b.Left -= step
		b.Right -= step
	case Right:
		b.Left += step
		b.Right += step
	case Top, Bottom:
		b.Top += step
		b.Bottom += step
	}
}

// Stretch pushes one edge of the box outwards by step pixels, or every edge
// for All. A negative step shrinks the box. The edges are reordered with
// CheckNumbers afterwards.
func (b *Box) Stretch(d Direction, step int) {
	switch d {
	case Left:
		b.Left -= step
	case Right:
		b.Right += step
	case Top:
		b.Top += step
	case Bottom:
		b.Bottom -= step
	case All:
		b.Left -= step
		b.Right += step
		b.Top += step
		b.Bottom -= step
	}
	b.CheckNumbers()
}

// SetText replaces the box text. The value is NFC normalized; it must be non
// empty and free of white space, otherwise ErrInvalidText is returned and the
// box is left unchanged.
func (b *Box) SetText(s string) error {
	if err := ValidateText(s); err != nil {
		return err
	}
	b.Text = norm.NFC.String(s)
	return nil
}

// ValidateText reports whether s can be stored as box text.
func ValidateText(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidText)
	}
	if i := strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}); i >= 0 {
		return fmt.Errorf("%w: %q contains a separator at byte %d", ErrInvalidText, s, i)
	}
	return nil
}

// IsUpper reports whether the box text has at least one cased letter and no
// lower case letters.
func (b Box) IsUpper() bool {
	cased := false
	for _, r := range b.Text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
