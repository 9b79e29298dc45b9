package event_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func TestCodec(t *testing.T) {
	assert.True(t, event.LeftEventOf(3).IsLeft())
	assert.True(t, event.RightEventOf(3).IsRight())
	assert.Equal(t, 3, event.LeftEventOf(3).PieceID())
	assert.Equal(t, 3, event.RightEventOf(3).PieceID())
}

func TestArenaAddSegmentAndSplit(t *testing.T) {
	a := event.NewArena[rational.Rat](4)
	left := a.AddSegment(pt(0, 0), pt(4, 0), 7)
	right := a.Opposites[left]
	_ = right

	assert.True(t, a.CheckOppositesInvolution())
	assert.True(t, a.CheckLeftBeforeRight())
	assert.Equal(t, 7, a.Origin(left))

	m := pt(2, 0)
	newLeft, newRight := a.Split(left, m)

	assert.True(t, a.CheckOppositesInvolution())
	assert.True(t, a.CheckLeftBeforeRight())
	assert.Equal(t, 7, a.Origin(newLeft))
	assert.Equal(t, 7, a.Origin(newRight))
	assert.True(t, a.Start(newRight).Eq(m))
	assert.True(t, a.End(newRight).Eq(pt(0, 0)))
	assert.True(t, a.Start(newLeft).Eq(m))
	assert.True(t, a.End(newLeft).Eq(pt(4, 0)))
}

func TestQueueOrdersByEventsQueueLess(t *testing.T) {
	a := event.NewArena[rational.Rat](2)
	l1 := a.AddSegment(pt(0, 0), pt(1, 1), 0)
	l2 := a.AddSegment(pt(0, 1), pt(1, 2), 1)

	q := event.NewQueue(a.EventsQueueLess(nil))
	q.Push(l1)
	q.Push(a.Opposites[l1])
	q.Push(l2)
	q.Push(a.Opposites[l2])
	require.Equal(t, 4, q.Len())

	first, ok := q.Peek()
	require.True(t, ok)
	assert.True(t, first.IsLeft())

	popped := q.Pop()
	assert.Equal(t, first, popped)
	assert.Equal(t, 3, q.Len())
}

func TestStatusStructureNeighbors(t *testing.T) {
	a := event.NewArena[rational.Rat](3)
	low := a.AddSegment(pt(0, 0), pt(10, 0), 0)
	mid := a.AddSegment(pt(0, 5), pt(10, 5), 1)
	high := a.AddSegment(pt(0, 9), pt(10, 9), 2)

	s := event.NewStatusStructure(a.SweepLineLess(nil))
	s.Insert(low)
	s.Insert(mid)
	s.Insert(high)
	require.Equal(t, 3, s.Len())

	above, ok := s.Above(low)
	require.True(t, ok)
	assert.Equal(t, mid, above)

	below, ok := s.Below(high)
	require.True(t, ok)
	assert.Equal(t, mid, below)

	s.Remove(mid)
	assert.False(t, s.Contains(mid))
	_, ok = s.Above(low)
	require.True(t, ok)
}
