package textsync

import (
	"fmt"
	"slices"
)

// Buffer is an in-memory TextHost.
type Buffer struct {
	r         []rune
	q0, q1    int // selection
	observers []Observer
}

// NewBuffer returns a buffer holding text with the caret at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{r: []rune(text)}
}

// AddObserver registers o for change notifications.
func (b *Buffer) AddObserver(o Observer) {
	b.observers = append(b.observers, o)
}

// DelObserver removes o.
func (b *Buffer) DelObserver(o Observer) error {
	i := slices.Index(b.observers, o)
	if i < 0 {
		return fmt.Errorf("can't find observer in Buffer.DelObserver")
	}
	b.observers = slices.Delete(b.observers, i, i+1)
	return nil
}

func (b *Buffer) Text() string { return string(b.r) }

func (b *Buffer) Len() int { return len(b.r) }

func (b *Buffer) Slice(q0, q1 int) string {
	q0, q1 = b.clamp(q0), b.clamp(q1)
	if q1 < q0 {
		return ""
	}
	return string(b.r[q0:q1])
}

func (b *Buffer) LineCount() int {
	n := 1
	for _, c := range b.r {
		if c == '\n' {
			n++
		}
	}
	return n
}

func (b *Buffer) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	for i, c := range b.r {
		if c == '\n' {
			line--
			if line == 0 {
				return i + 1
			}
		}
	}
	return len(b.r)
}

func (b *Buffer) LineAt(offset int) int {
	offset = b.clamp(offset)
	n := 0
	for _, c := range b.r[:offset] {
		if c == '\n' {
			n++
		}
	}
	return n
}

func (b *Buffer) Selection() (int, int) { return b.q0, b.q1 }

// SetSelection selects [q0,q1), ordering and clamping the bounds.
func (b *Buffer) SetSelection(q0, q1 int) {
	q0, q1 = b.clamp(q0), b.clamp(q1)
	if q1 < q0 {
		q0, q1 = q1, q0
	}
	b.q0, b.q1 = q0, q1
}

// Replace swaps the runes in [q0,q1) for text and notifies the observers.
// A replacement that changes nothing is not reported.
func (b *Buffer) Replace(q0, q1 int, text string) error {
	if q0 < 0 || q1 < q0 || q1 > len(b.r) {
		return fmt.Errorf("%w: [%d,%d) in buffer of %d runes", ErrInvalidRange, q0, q1, len(b.r))
	}
	if q0 == q1 && text == "" {
		return nil
	}

	deleted := string(b.r[q0:q1])
	ins := []rune(text)
	tail := append([]rune(nil), b.r[q1:]...)
	b.r = append(append(b.r[:q0], ins...), tail...)

	adjust := func(p int) int {
		switch {
		case p <= q0:
			return p
		case p >= q1:
			return p - (q1 - q0) + len(ins)
		}
		return q0
	}
	b.q0, b.q1 = adjust(b.q0), adjust(b.q1)

	for _, o := range b.observers {
		o.Changed(q0, deleted, text)
	}
	return nil
}

func (b *Buffer) clamp(p int) int {
	return max(0, min(p, len(b.r)))
}
