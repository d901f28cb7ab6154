package textsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	offset            int
	deleted, inserted string
}

type recorder struct {
	changes []change
}

func (r *recorder) Changed(offset int, deleted, inserted string) {
	r.changes = append(r.changes, change{offset, deleted, inserted})
}

func TestBufferLines(t *testing.T) {
	b := NewBuffer("ab\ncd\n\nef")

	assert.Equal(t, 4, b.LineCount())
	assert.Equal(t, []int{0, 3, 6, 7, 9}, []int{b.LineStart(0), b.LineStart(1), b.LineStart(2), b.LineStart(3), b.LineStart(4)})
	assert.Equal(t, 0, b.LineAt(2))
	assert.Equal(t, 1, b.LineAt(3))
	assert.Equal(t, 3, b.LineAt(9))
	assert.Equal(t, 3, b.LineAt(100))
	assert.Equal(t, "cd\n", b.Slice(3, 6))
}

func TestBufferReplace(t *testing.T) {
	b := NewBuffer("héllo world")
	var rec recorder
	b.AddObserver(&rec)
	b.SetSelection(6, 11)

	require.NoError(t, b.Replace(0, 5, "hi"))
	assert.Equal(t, "hi world", b.Text())
	q0, q1 := b.Selection()
	assert.Equal(t, []int{3, 8}, []int{q0, q1}, "selection follows the edit")

	require.NoError(t, b.Replace(2, 2, ""))
	assert.Len(t, rec.changes, 1, "empty replacement is not reported")
	assert.Equal(t, change{0, "héllo", "hi"}, rec.changes[0])

	err := b.Replace(5, 100, "x")
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, "hi world", b.Text())

	require.NoError(t, b.DelObserver(&rec))
	require.NoError(t, b.Replace(0, 0, "x"))
	assert.Len(t, rec.changes, 1)
	assert.Error(t, b.DelObserver(&rec))
}

func TestBufferSelectionCollapsesInsideDeletion(t *testing.T) {
	b := NewBuffer("0123456789")
	b.SetSelection(8, 4)
	q0, q1 := b.Selection()
	assert.Equal(t, []int{4, 8}, []int{q0, q1})

	require.NoError(t, b.Replace(2, 6, ""))
	q0, q1 = b.Selection()
	assert.Equal(t, []int{2, 4}, []int{q0, q1})
}
