package numeric_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/numeric"
	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, numeric.Abs(-5))
	assert.Equal(t, 5, numeric.Abs(5))
	assert.Equal(t, 0, numeric.Abs(0))
	assert.Equal(t, 3.5, numeric.Abs(-3.5))
}

func TestCeilLog2(t *testing.T) {
	cases := map[int]int{
		1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 16: 4, 17: 5,
	}
	for n, want := range cases {
		assert.Equal(t, want, numeric.CeilLog2(n), "n=%d", n)
	}
}

func TestCeilLog2Panics(t *testing.T) {
	assert.Panics(t, func() { numeric.CeilLog2(0) })
}
