// Package undo records text level insertions and deletions and replays them
// to undo and redo edits.
//
// Changes are grouped into actions. An action holds every change made by one
// edit (a batch rewrite of a selection is a deletion followed by an insertion)
// and is undone or redone as a unit. Actions live in a single slice with a
// cursor: recording a new action throws away everything after the cursor, so
// history never branches.
package undo

import "fmt"

// Kind tags a Change as an insertion or a deletion.
type Kind int

const (
	Insert Kind = iota
	Delete
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Change is one insertion or deletion of Text at rune Offset.
type Change struct {
	Kind   Kind
	Offset int
	Text   string
}

// Inverse returns the change that cancels c.
func (c Change) Inverse() Change {
	if c.Kind == Insert {
		c.Kind = Delete
	} else {
		c.Kind = Insert
	}
	return c
}

func (c Change) String() string {
	return fmt.Sprintf("%s@%d %q", c.Kind, c.Offset, c.Text)
}

// Replacer is the buffer mutation a Change is applied through.
type Replacer interface {
	Replace(q0, q1 int, text string) error
}

// Apply performs c on r. A deletion removes as many runes as Text holds,
// starting at Offset; an insertion puts Text at Offset.
func Apply(r Replacer, c Change) error {
	switch c.Kind {
	case Insert:
		return r.Replace(c.Offset, c.Offset, c.Text)
	case Delete:
		return r.Replace(c.Offset, c.Offset+len([]rune(c.Text)), "")
	}
	return fmt.Errorf("unknown change kind %v", c.Kind)
}

// action is the group of changes made by one edit.
type action struct {
	changes []Change
}

// Log is an undo/redo history.
// The zero value is an empty log ready to use.
type Log struct {
	actions []*action // every recorded action, oldest first
	head    int       // index of the next action to record; actions[head:] are redoable
}

// Record adds an action made of changes, in the order they were applied.
// Any undone actions are discarded. Recording no changes is a no-op.
func (l *Log) Record(changes ...Change) {
	if len(changes) == 0 {
		return
	}
	a := &action{changes: append([]Change(nil), changes...)}
	l.actions = append(l.actions[:l.head], a)
	l.head++
}

// Undo steps back over the most recent action and returns the changes that
// revert it: the inverse of each change, last change first. It returns nil
// when there is nothing to undo.
func (l *Log) Undo() []Change {
	if l.head == 0 {
		return nil
	}
	l.head--
	a := l.actions[l.head]

	out := make([]Change, 0, len(a.changes))
	for i := len(a.changes) - 1; i >= 0; i-- {
		out = append(out, a.changes[i].Inverse())
	}
	return out
}

// Redo steps forward over the most recently undone action and returns its
// changes as they were originally recorded. It returns nil when there is
// nothing to redo.
func (l *Log) Redo() []Change {
	if l.head >= len(l.actions) {
		return nil
	}
	a := l.actions[l.head]
	l.head++
	return append([]Change(nil), a.changes...)
}

// CanUndo reports whether Undo would return an action.
func (l *Log) CanUndo() bool { return l.head > 0 }

// CanRedo reports whether Redo would return an action.
func (l *Log) CanRedo() bool { return l.head < len(l.actions) }

// Len returns the number of undoable actions.
func (l *Log) Len() int { return l.head }

// Reset empties the log.
func (l *Log) Reset() {
	l.actions = nil
	l.head = 0
}
