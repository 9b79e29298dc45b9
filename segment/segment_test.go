package segment_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func TestNewRejectsDegenerate(t *testing.T) {
	_, err := segment.New(pt(1, 1), pt(1, 1))
	require.ErrorIs(t, err, segment.ErrDegenerate)
}

func TestCanonicalEndpoints(t *testing.T) {
	s, err := segment.New(pt(2, 2), pt(0, 0))
	require.NoError(t, err)
	min, max := s.CanonicalEndpoints()
	assert.True(t, min.Eq(pt(0, 0)))
	assert.True(t, max.Eq(pt(2, 2)))

	start, end := s.Endpoints()
	assert.True(t, start.Eq(pt(2, 2)))
	assert.True(t, end.Eq(pt(0, 0)))
}

func TestEq(t *testing.T) {
	a, _ := segment.New(pt(0, 0), pt(1, 1))
	b, _ := segment.New(pt(0, 0), pt(1, 1))
	c, _ := segment.New(pt(1, 1), pt(0, 0))
	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}

func TestDeduplicateDropsReversedRepeat(t *testing.T) {
	a, _ := segment.New(pt(0, 0), pt(1, 1))
	b, _ := segment.New(pt(1, 1), pt(0, 0))
	c, _ := segment.New(pt(2, 2), pt(3, 3))
	unique := segment.Deduplicate([]segment.Segment[rational.Rat]{a, b, c})
	assert.Len(t, unique, 2)
	assert.True(t, unique[0].Eq(a))
	assert.True(t, unique[1].Eq(c))
}
