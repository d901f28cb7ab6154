// Package textsync keeps a line range of a boxfile text buffer and the boxes
// parsed from it in step.
//
// The buffer itself belongs to a TextHost, normally a text widget owned by the
// user interface. Buffer is an in-memory TextHost used by command line tools
// and tests. Sync reads the lines under the host selection into a list of
// boxes and writes an edited list back in a single replacement.
//
// All offsets are rune offsets; all line numbers are zero based.
package textsync

import "errors"

// ErrInvalidRange indicates a replacement outside the buffer.
var ErrInvalidRange = errors.New("range outside buffer")

// Replacer performs an atomic replacement of the runes in [q0,q1) with text.
// On error the buffer must be left untouched.
type Replacer interface {
	Replace(q0, q1 int, text string) error
}

// TextHost is the text buffer the boxes are edited in.
type TextHost interface {
	Replacer

	// Text returns the whole buffer.
	Text() string
	// Slice returns the runes in [q0,q1).
	Slice(q0, q1 int) string
	// Len returns the buffer length in runes.
	Len() int

	// LineCount returns the number of lines; a buffer always has at least one.
	LineCount() int
	// LineStart returns the offset of the first rune of line, or Len() for
	// lines past the end.
	LineStart(line int) int
	// LineAt returns the line holding offset.
	LineAt(offset int) int

	// Selection returns the selected range; q0 == q1 is a plain caret.
	Selection() (q0, q1 int)
	// SetSelection selects [q0,q1).
	SetSelection(q0, q1 int)
}

// Observer implementations are told about every change made to a Buffer.
type Observer interface {
	// Changed reports that deleted was removed at offset and inserted was
	// put in its place. It is called once per replacement, after the
	// buffer has been updated.
	Changed(offset int, deleted, inserted string)
}
