package textsync

import (
	"fmt"
	"strings"

	"github.com/gardar/boxtrain/pkg/boxfile"
)

// Range is the half-open line interval [Top, Bottom).
type Range struct {
	Top    int
	Bottom int
}

// Len returns the number of lines in the range.
func (r Range) Len() int { return r.Bottom - r.Top }

func (r Range) String() string { return fmt.Sprintf("lines [%d,%d)", r.Top, r.Bottom) }

// Diagnostics receives the lines that could not be parsed as boxes.
type Diagnostics interface {
	InvalidLine(line int, raw string)
}

// DiagnosticsFunc adapts a function to the Diagnostics interface.
type DiagnosticsFunc func(line int, raw string)

func (f DiagnosticsFunc) InvalidLine(line int, raw string) { f(line, raw) }

// Delta describes the replacement made by a Commit.
type Delta struct {
	Offset   int    // Rune offset of the replaced text
	Deleted  string // Text removed from the buffer
	Inserted string // Text put in its place
}

// Empty reports whether the delta changed nothing.
func (d Delta) Empty() bool { return d.Deleted == "" && d.Inserted == "" }

// Sync maps the lines under the host selection to a list of boxes.
type Sync struct {
	host  TextHost
	diag  Diagnostics
	rng   Range
	boxes []boxfile.Box
}

// New returns a Sync reading from host. Unparsable lines are reported to
// diag, which may be nil.
func New(host TextHost, diag Diagnostics) *Sync {
	return &Sync{host: host, diag: diag}
}

// ActiveRange returns the lines covered by the host selection: every line
// touched by a non-empty selection, or the caret line.
func (s *Sync) ActiveRange() Range {
	q0, q1 := s.host.Selection()
	top := s.host.LineAt(q0)
	if q0 == q1 {
		return Range{Top: top, Bottom: top + 1}
	}
	return Range{Top: top, Bottom: s.host.LineAt(q1) + 1}
}

// Refresh recomputes the active range and parses its boxes.
func (s *Sync) Refresh() []boxfile.Box {
	s.rng = s.ActiveRange()
	s.boxes = s.read(s.rng)
	return s.Boxes()
}

// Range returns the line range the current boxes were read from.
func (s *Sync) Range() Range { return s.rng }

// Boxes returns a copy of the current boxes.
func (s *Sync) Boxes() []boxfile.Box {
	return append([]boxfile.Box(nil), s.boxes...)
}

func (s *Sync) span(r Range) (q0, q1 int) {
	return s.host.LineStart(r.Top), s.host.LineStart(r.Bottom)
}

// read parses the non-blank lines of r. Lines that fail to parse stay in
// the buffer and are reported to the diagnostics sink.
func (s *Sync) read(r Range) []boxfile.Box {
	var boxes []boxfile.Box
	for i, raw := range strings.Split(s.host.Slice(s.span(r)), "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		b := boxfile.Parse(raw)
		if !b.Valid {
			if s.diag != nil {
				s.diag.InvalidLine(r.Top+i, raw)
			}
			continue
		}
		boxes = append(boxes, b)
	}
	return boxes
}

// Commit writes boxes back over the current range with a single call to
// ed.Replace, or to the host when ed is nil.
//
// With deleteOnly set the range is removed and the caret is left at the
// deletion point. Otherwise every box is written as one line, the range is
// moved onto the new lines and the boxes are parsed again from the buffer.
// One or no box leaves the caret at the start of the range; more select the
// whole range. A list identical to the current one rewrites the range text
// verbatim, keeping blank and unparsable lines.
//
// If the replacement fails the buffer and the selection are unchanged.
func (s *Sync) Commit(ed Replacer, boxes []boxfile.Box, deleteOnly bool) (Delta, error) {
	if ed == nil {
		ed = s.host
	}

	q0, q1 := s.span(s.rng)
	d := Delta{Offset: q0, Deleted: s.host.Slice(q0, q1)}
	if !deleteOnly {
		d.Inserted = boxfile.Format(boxes)
		if d.Inserted == boxfile.Format(s.boxes) {
			d.Inserted = d.Deleted
		}
	}

	if !d.Empty() {
		if err := ed.Replace(q0, q1, d.Inserted); err != nil {
			return Delta{}, fmt.Errorf("commit %v: %w", s.rng, err)
		}
	}

	if deleteOnly {
		s.host.SetSelection(q0, q0)
		s.Refresh()
		return d, nil
	}

	s.rng = Range{Top: s.rng.Top, Bottom: s.rng.Top + lineCount(d.Inserted)}
	s.boxes = s.read(s.rng)
	if len(s.boxes) < 2 {
		s.host.SetSelection(q0, q0)
	} else {
		// End on the last new line rather than the start of the next.
		s.host.SetSelection(q0, s.host.LineStart(s.rng.Bottom)-1)
	}
	return d, nil
}

// lineCount returns the number of lines text occupies, counting a final
// line without a newline.
func lineCount(text string) int {
	n := strings.Count(text, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
