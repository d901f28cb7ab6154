package document

import (
	"strings"
	"unicode/utf8"

	"github.com/gardar/boxtrain/pkg/boxfile"
	"github.com/gardar/boxtrain/pkg/boxops"
)

// Next moves the caret to the line after the selection and returns the box
// there. The caret stays put on the last line.
func (d *Document) Next() []boxfile.Box {
	r := d.sync.ActiveRange()
	if p := d.host.LineStart(r.Bottom); p < d.host.Len() {
		d.host.SetSelection(p, p)
	}
	return d.refresh()
}

// Previous moves the caret to the line before the selection and returns the
// box there. The caret stays put on the first line.
func (d *Document) Previous() []boxfile.Box {
	r := d.sync.ActiveRange()
	if r.Top > 0 {
		p := d.host.LineStart(r.Top - 1)
		d.host.SetSelection(p, p)
	}
	return d.refresh()
}

// Find selects the next occurrence of query after the caret, or the
// previous one before it when forward is false. A forward match starting at
// the caret is skipped, so repeated calls step through the matches. It
// reports whether anything was found.
func (d *Document) Find(query string, forward bool) bool {
	if query == "" {
		return false
	}
	text := d.host.Text()
	q0, _ := d.host.Selection()
	at := byteOffset(text, q0)

	var i int
	if forward {
		i = strings.Index(text[at:], query)
		if i == 0 {
			at += len(query)
			i = strings.Index(text[at:], query)
		}
		if i >= 0 {
			i += at
		}
	} else {
		i = strings.LastIndex(text[:at], query)
	}
	if i < 0 {
		return false
	}

	p0 := utf8.RuneCountInString(text[:i])
	d.host.SetSelection(p0, p0+utf8.RuneCountInString(query))
	d.refresh()
	return true
}

// Retype sets the text of every selected box to r and moves on to the next
// line.
func (d *Document) Retype(r rune) error {
	if err := d.ApplyEdit(boxops.Command{Op: boxops.OpReplaceChar, Char: r}); err != nil {
		return err
	}
	d.Next()
	return nil
}

// Attributes returns the style of the first selected box.
func (d *Document) Attributes() (bold, italic, underline, ok bool) {
	boxes := d.sync.Boxes()
	if len(boxes) == 0 {
		return false, false, false, false
	}
	b := boxes[0]
	return b.Bold, b.Italic, b.Underline, true
}

// byteOffset converts a rune offset in s to a byte offset.
func byteOffset(s string, runes int) int {
	for i := range s {
		if runes == 0 {
			return i
		}
		runes--
	}
	return len(s)
}
