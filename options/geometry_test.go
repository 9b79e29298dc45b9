package options_test

import (
	"math/rand/v2"
	"testing"

	"github.com/lycantropos/rene-sub000/options"
	"github.com/stretchr/testify/assert"
)

func TestApplyGeometryOptions(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	got := options.ApplyGeometryOptions(options.GeometryOptions{}, options.WithRand(r), options.WithUniqueOnly(true))
	assert.Same(t, r, got.Rand)
	assert.True(t, got.UniqueOnly)
}

func TestApplyGeometryOptionsDefaults(t *testing.T) {
	got := options.ApplyGeometryOptions(options.GeometryOptions{})
	assert.Nil(t, got.Rand)
	assert.False(t, got.UniqueOnly)
}
