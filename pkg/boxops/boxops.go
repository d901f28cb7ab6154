// Package boxops implements the batch edits applied to a selection of boxes:
// merge, split, delete, move, stretch, attribute toggles and character
// replacement.
//
// Every operation takes the selection as a slice of boxes and returns a new
// slice. Inputs are never modified, so a selection handed out to a renderer
// or a pending callback stays valid while the edited copy is written back.
package boxops

import (
	"errors"
	"fmt"

	"github.com/gardar/boxtrain/pkg/boxfile"
)

// ErrEmptySelection is returned when an edit needs at least one box.
var ErrEmptySelection = errors.New("no boxes selected")

// Merge returns the smallest box enclosing every box in the selection.
// The text is the concatenation of the texts in selection order, the page is
// the lowest page, and the style flags are taken from the first box.
func Merge(boxes []boxfile.Box) (boxfile.Box, error) {
	if len(boxes) == 0 {
		return boxfile.Box{}, ErrEmptySelection
	}

	m := boxes[0]
	for _, b := range boxes[1:] {
		m.Left = min(m.Left, b.Left)
		m.Right = max(m.Right, b.Right)
		m.Top = max(m.Top, b.Top)
		m.Bottom = min(m.Bottom, b.Bottom)
		m.Page = min(m.Page, b.Page)
		m.Text += b.Text
	}
	m.Valid = true
	m.CheckNumbers()
	return m, nil
}

// Split cuts every box vertically at the midpoint of its horizontal extent.
// Each box is replaced in place by a left and a right half sharing the
// center column; both halves keep the text, page and style of the source.
func Split(boxes []boxfile.Box) []boxfile.Box {
	out := make([]boxfile.Box, 0, 2*len(boxes))
	for _, b := range boxes {
		center := (b.Left + b.Right) / 2
		left, right := b, b
		left.Right = center
		right.Left = center
		out = append(out, left, right)
	}
	return out
}

// Move translates every box by step pixels in direction d.
func Move(boxes []boxfile.Box, d boxfile.Direction, step int) []boxfile.Box {
	return each(boxes, func(b *boxfile.Box) { b.Move(d, step) })
}

// Stretch grows the d edge of every box by step pixels.
// A negative step shrinks the boxes.
func Stretch(boxes []boxfile.Box, d boxfile.Direction, step int) []boxfile.Box {
	return each(boxes, func(b *boxfile.Box) { b.Stretch(d, step) })
}

// SetAttribute assigns value to attribute a on every box.
func SetAttribute(boxes []boxfile.Box, a boxfile.Attribute, value bool) []boxfile.Box {
	return each(boxes, func(b *boxfile.Box) { b.Set(a, value) })
}

// ReplaceChar sets the text of every box to the single character r.
func ReplaceChar(boxes []boxfile.Box, r rune) ([]boxfile.Box, error) {
	s := string(r)
	if err := boxfile.ValidateText(s); err != nil {
		return nil, err
	}
	return each(boxes, func(b *boxfile.Box) {
		// ValidateText passed, SetText cannot fail.
		_ = b.SetText(s)
	}), nil
}

func each(boxes []boxfile.Box, fn func(*boxfile.Box)) []boxfile.Box {
	out := make([]boxfile.Box, len(boxes))
	copy(out, boxes)
	for i := range out {
		fn(&out[i])
	}
	return out
}

// Op identifies a batch edit.
type Op int

const (
	OpMerge Op = iota
	OpSplit
	OpDelete
	OpMove
	OpStretch
	OpSetAttribute
	OpReplaceChar
)

var opNames = [...]string{"merge", "split", "delete", "move", "stretch", "attribute", "char"}

func (o Op) String() string {
	if o < OpMerge || o > OpReplaceChar {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Command describes one batch edit and its arguments.
// Only the fields relevant to Op are read.
type Command struct {
	Op        Op
	Direction boxfile.Direction // OpMove, OpStretch
	Step      int               // OpMove, OpStretch
	Attribute boxfile.Attribute // OpSetAttribute
	Value     bool              // OpSetAttribute
	Char      rune              // OpReplaceChar
}

func (c Command) String() string {
	switch c.Op {
	case OpMove, OpStretch:
		return fmt.Sprintf("%s %s %d", c.Op, c.Direction, c.Step)
	case OpSetAttribute:
		return fmt.Sprintf("%s %s=%t", c.Op, c.Attribute, c.Value)
	case OpReplaceChar:
		return fmt.Sprintf("%s %q", c.Op, c.Char)
	}
	return c.Op.String()
}

// Result is the outcome of applying a Command to a selection.
type Result struct {
	Boxes      []boxfile.Box // Replacement boxes, in order
	DeleteOnly bool          // The selection is removed and nothing is inserted
}

// Apply runs cmd over boxes.
func Apply(cmd Command, boxes []boxfile.Box) (Result, error) {
	switch cmd.Op {
	case OpMerge:
		m, err := Merge(boxes)
		if err != nil {
			return Result{}, err
		}
		return Result{Boxes: []boxfile.Box{m}}, nil
	case OpSplit:
		return Result{Boxes: Split(boxes)}, nil
	case OpDelete:
		return Result{DeleteOnly: true}, nil
	case OpMove:
		return Result{Boxes: Move(boxes, cmd.Direction, cmd.Step)}, nil
	case OpStretch:
		return Result{Boxes: Stretch(boxes, cmd.Direction, cmd.Step)}, nil
	case OpSetAttribute:
		return Result{Boxes: SetAttribute(boxes, cmd.Attribute, cmd.Value)}, nil
	case OpReplaceChar:
		out, err := ReplaceChar(boxes, cmd.Char)
		if err != nil {
			return Result{}, err
		}
		return Result{Boxes: out}, nil
	}
	return Result{}, fmt.Errorf("unsupported edit %v", cmd.Op)
}
