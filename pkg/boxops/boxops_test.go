package boxops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gardar/boxtrain/pkg/boxfile"
)

func box(text string, left, bottom, right, top, page int) boxfile.Box {
	return boxfile.Box{Text: text, Left: left, Bottom: bottom, Right: right, Top: top, Page: page, Valid: true}
}

func drawBox(t *rapid.T, label string) boxfile.Box {
	b := box(
		rapid.StringMatching(`[a-z]{1,3}`).Draw(t, label+".text"),
		rapid.IntRange(0, 2000).Draw(t, label+".left"),
		rapid.IntRange(0, 2000).Draw(t, label+".bottom"),
		rapid.IntRange(0, 2000).Draw(t, label+".right"),
		rapid.IntRange(0, 2000).Draw(t, label+".top"),
		rapid.IntRange(0, 3).Draw(t, label+".page"),
	)
	b.Bold = rapid.Bool().Draw(t, label+".bold")
	b.CheckNumbers()
	return b
}

func TestMerge(t *testing.T) {
	boxes := []boxfile.Box{
		box("r", 10, 20, 15, 40, 1),
		box("n", 16, 18, 25, 38, 0),
	}
	m, err := Merge(boxes)
	require.NoError(t, err)
	assert.Equal(t, box("rn", 10, 18, 25, 40, 0), m)
}

func TestMergeEmpty(t *testing.T) {
	_, err := Merge(nil)
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = Apply(Command{Op: OpMerge}, nil)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestMergeSingleIsIdentity(t *testing.T) {
	b := box("x", 1, 2, 3, 4, 0)
	b.Italic = true
	m, err := Merge([]boxfile.Box{b})
	require.NoError(t, err)
	assert.Equal(t, b, m)
}

func TestPropertyMergeEnclosesSelection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		boxes := make([]boxfile.Box, n)
		for i := range boxes {
			boxes[i] = drawBox(t, "box")
		}

		m, err := Merge(boxes)
		if err != nil {
			t.Fatal(err)
		}
		want := boxes[0]
		text := ""
		for _, b := range boxes {
			want.Left = min(want.Left, b.Left)
			want.Right = max(want.Right, b.Right)
			want.Top = max(want.Top, b.Top)
			want.Bottom = min(want.Bottom, b.Bottom)
			want.Page = min(want.Page, b.Page)
			text += b.Text
		}
		if m.Left != want.Left || m.Right != want.Right || m.Top != want.Top ||
			m.Bottom != want.Bottom || m.Page != want.Page || m.Text != text {
			t.Fatalf("merge of %+v = %+v", boxes, m)
		}
	})
}

func TestSplitExample(t *testing.T) {
	b := box("m", 10, 0, 21, 5, 0)
	got := Split([]boxfile.Box{b})
	require.Len(t, got, 2)
	assert.Equal(t, box("m", 10, 0, 15, 5, 0), got[0])
	assert.Equal(t, box("m", 15, 0, 21, 5, 0), got[1])
}

func TestSplitKeepsOrder(t *testing.T) {
	got := Split([]boxfile.Box{box("a", 0, 0, 4, 1, 0), box("b", 10, 0, 20, 1, 0)})
	require.Len(t, got, 4)
	assert.Equal(t, []string{"a", "a", "b", "b"}, []string{got[0].Text, got[1].Text, got[2].Text, got[3].Text})
	assert.Equal(t, 15, got[2].Right)
	assert.Equal(t, 15, got[3].Left)
}

func TestPropertySplitCoversSource(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawBox(t, "box")
		got := Split([]boxfile.Box{b})
		if len(got) != 2 {
			t.Fatalf("split produced %d boxes", len(got))
		}
		l, r := got[0], got[1]
		if l.Left != b.Left || r.Right != b.Right || l.Right != r.Left {
			t.Fatalf("split of [%d,%d] gave [%d,%d] and [%d,%d]", b.Left, b.Right, l.Left, l.Right, r.Left, r.Right)
		}
		if l.Text != b.Text || r.Text != b.Text || l.Bold != b.Bold || r.Page != b.Page {
			t.Fatalf("split changed non-geometry fields: %+v -> %+v, %+v", b, l, r)
		}
	})
}

func TestBatchEditsDoNotMutateInput(t *testing.T) {
	in := []boxfile.Box{box("a", 0, 0, 10, 10, 0), box("b", 20, 0, 30, 10, 0)}
	orig := append([]boxfile.Box(nil), in...)

	moved := Move(in, boxfile.Right, 3)
	stretched := Stretch(in, boxfile.All, 1)
	styled := SetAttribute(in, boxfile.Italic, true)
	retyped, err := ReplaceChar(in, 'Z')
	require.NoError(t, err)

	assert.Equal(t, orig, in)
	assert.Equal(t, 3, moved[0].Left)
	assert.Equal(t, 31, stretched[1].Right)
	assert.True(t, styled[1].Italic)
	assert.Equal(t, "Z", retyped[0].Text)
	assert.Equal(t, "Z", retyped[1].Text)
}

func TestReplaceCharRejectsSeparators(t *testing.T) {
	_, err := ReplaceChar([]boxfile.Box{box("a", 0, 0, 1, 1, 0)}, ' ')
	assert.ErrorIs(t, err, boxfile.ErrInvalidText)
}

func TestApply(t *testing.T) {
	sel := []boxfile.Box{box("a", 0, 0, 10, 10, 0)}

	res, err := Apply(Command{Op: OpDelete}, sel)
	require.NoError(t, err)
	assert.True(t, res.DeleteOnly)
	assert.Empty(t, res.Boxes)

	res, err = Apply(Command{Op: OpStretch, Direction: boxfile.Left, Step: 2}, sel)
	require.NoError(t, err)
	assert.Equal(t, -2, res.Boxes[0].Left)

	res, err = Apply(Command{Op: OpSetAttribute, Attribute: boxfile.Underline, Value: true}, sel)
	require.NoError(t, err)
	assert.Equal(t, "'a 0 0 10 10 0", res.Boxes[0].String())

	res, err = Apply(Command{Op: OpSplit}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Boxes)
}
