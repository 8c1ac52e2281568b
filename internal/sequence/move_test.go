package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	testCases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a", "d"}},
		{name: "backward", from: 3, to: 1, want: []string{"a", "d", "b", "c"}},
		{name: "to end", from: 1, to: 3, want: []string{"a", "c", "d", "b"}},
		{name: "to front", from: 2, to: 0, want: []string{"c", "a", "b", "d"}},
		{name: "same index", from: 2, to: 2, want: []string{"a", "b", "c", "d"}},
		{name: "from out of range", from: 4, to: 0, want: []string{"a", "b", "c", "d"}},
		{name: "negative target", from: 0, to: -1, want: []string{"a", "b", "c", "d"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seq := []string{"a", "b", "c", "d"}
			got := Move(seq, tc.from, tc.to)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, []string{"a", "b", "c", "d"}, seq, "input must not change")
		})
	}
}

func TestMove_PermutationProperty(t *testing.T) {
	seq := []int{10, 11, 12, 13, 14, 15}
	for i := range seq {
		for j := range seq {
			got := Move(seq, i, j)
			require.Len(t, got, len(seq))
			assert.Equal(t, seq[i], got[j])

			rest := make([]int, 0, len(seq)-1)
			for k, v := range got {
				if k != j {
					rest = append(rest, v)
				}
			}
			want := append(append([]int{}, seq[:i]...), seq[i+1:]...)
			assert.Equal(t, want, rest, "move(%d,%d) must keep relative order", i, j)
		}
	}
}

func TestMove_Empty(t *testing.T) {
	assert.Empty(t, Move([]string{}, 0, 0))
	assert.Empty(t, Move[string](nil, 0, 1))
}

func TestReorder(t *testing.T) {
	id := func(s string) string { return s }
	seq := []string{"a", "b", "c"}

	testCases := []struct {
		name    string
		gesture Gesture
		want    []string
		moved   bool
	}{
		{name: "move up", gesture: Gesture{SourceID: "c", TargetID: "a"}, want: []string{"c", "a", "b"}, moved: true},
		{name: "move down", gesture: Gesture{SourceID: "a", TargetID: "b"}, want: []string{"b", "a", "c"}, moved: true},
		{name: "unknown target", gesture: Gesture{SourceID: "a", TargetID: "missing"}, want: seq},
		{name: "dropped in place", gesture: Gesture{SourceID: "b", TargetID: "b"}, want: seq},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, moved := Reorder(seq, id, tc.gesture)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.moved, moved)
		})
	}
	assert.Equal(t, []string{"a", "b", "c"}, seq)
}

func TestDrag(t *testing.T) {
	var d Drag
	assert.Equal(t, DragIdle, d.State())

	d.Start("c")
	d.Over("b")
	d.Over("a")
	assert.Equal(t, DragActive, d.State())
	assert.Equal(t, "a", d.Hovered())

	g, ok := d.Drop()
	require.True(t, ok)
	assert.Equal(t, Gesture{SourceID: "c", TargetID: "a"}, g)
	assert.Equal(t, DragIdle, d.State())
}

func TestDrag_DropOutsideTarget(t *testing.T) {
	var d Drag
	d.Start("a")
	d.Over("b")
	d.Over("")

	_, ok := d.Drop()
	assert.False(t, ok)
}

func TestDrag_Cancel(t *testing.T) {
	var d Drag
	d.Start("a")
	d.Over("b")
	d.Cancel()

	_, ok := d.Drop()
	assert.False(t, ok)

	d.Over("c")
	assert.Empty(t, d.Hovered(), "over without start is ignored")
}

func TestDrag_DropOnItself(t *testing.T) {
	var d Drag
	d.Start("b")
	d.Over("b")

	_, ok := d.Drop()
	assert.False(t, ok)
	assert.Equal(t, DragIdle, d.State())
}
