package bbox_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/bbox"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/stretchr/testify/assert"
)

func r(n int64) rational.Rat { return rational.FromInt(n) }

func TestDisjoint(t *testing.T) {
	a := bbox.New(r(0), r(2), r(0), r(2))
	b := bbox.New(r(3), r(5), r(0), r(2))
	assert.True(t, a.Disjoint(b))
	assert.False(t, a.Touches(b))
	assert.False(t, a.Overlaps(b))
}

func TestTouches(t *testing.T) {
	a := bbox.New(r(0), r(2), r(0), r(2))
	b := bbox.New(r(2), r(4), r(0), r(2))
	assert.False(t, a.Disjoint(b))
	assert.True(t, a.Touches(b))
}

func TestOverlaps(t *testing.T) {
	a := bbox.New(r(0), r(4), r(0), r(4))
	b := bbox.New(r(2), r(6), r(2), r(6))
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Covers(b))
}

func TestCoversAndWithin(t *testing.T) {
	outer := bbox.New(r(0), r(10), r(0), r(10))
	inner := bbox.New(r(2), r(4), r(2), r(4))
	assert.True(t, outer.Covers(inner))
	assert.True(t, inner.Within(outer))
	assert.False(t, outer.Overlaps(inner))
}

func TestExpanded(t *testing.T) {
	b := bbox.New(r(0), r(2), r(0), r(2)).Expanded(r(1))
	assert.Equal(t, r(-1), b.MinX)
	assert.Equal(t, r(3), b.MaxX)
}
