package bentleyottmann_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/bentleyottmann"
	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func TestDetectProperCrossing(t *testing.T) {
	a := event.NewArena[rational.Rat](2)
	a.AddSegment(pt(0, 0), pt(4, 4), 0)
	a.AddSegment(pt(0, 4), pt(4, 0), 1)

	eng := bentleyottmann.New(a)
	its := eng.Detect()
	require.Len(t, its, 1)
	assert.Equal(t, bentleyottmann.ProperCrossing, its[0].Kind)
	assert.True(t, its[0].Point.Eq(pt(2, 2)))
}

func TestDetectOverlap(t *testing.T) {
	a := event.NewArena[rational.Rat](2)
	a.AddSegment(pt(0, 0), pt(4, 0), 0)
	a.AddSegment(pt(2, 0), pt(6, 0), 1)

	eng := bentleyottmann.New(a)
	its := eng.Detect()
	require.Len(t, its, 1)
	assert.Equal(t, bentleyottmann.Overlap, its[0].Kind)
	assert.Equal(t, eng.Representative(0), eng.Representative(1))
}

func TestIsMultisegmentValid(t *testing.T) {
	valid := [][2]point.Point[rational.Rat]{
		{pt(0, 0), pt(1, 0)},
		{pt(1, 0), pt(1, 1)},
	}
	assert.True(t, bentleyottmann.IsMultisegmentValid(valid))

	invalid := [][2]point.Point[rational.Rat]{
		{pt(0, 0), pt(4, 4)},
		{pt(0, 4), pt(4, 0)},
	}
	assert.False(t, bentleyottmann.IsMultisegmentValid(invalid))
}

func TestIsContourValid(t *testing.T) {
	square := []point.Point[rational.Rat]{
		pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4),
	}
	assert.True(t, bentleyottmann.IsContourValid(square))

	bowtie := []point.Point[rational.Rat]{
		pt(0, 0), pt(4, 4), pt(4, 0), pt(0, 4),
	}
	assert.False(t, bentleyottmann.IsContourValid(bowtie))
}
