package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastDrawCache(t *testing.T) {
	var c FastDrawCache
	s := &Series{Key: "a"}

	c.Store("a", s)
	_, ok := c.Lookup("a")
	assert.False(t, ok, "inactive cache stores nothing")

	assert.True(t, c.Begin())
	assert.False(t, c.Begin())
	c.Store("a", s)
	got, ok := c.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, s, got)

	c.End()
	assert.False(t, c.Active())
	_, ok = c.Lookup("a")
	assert.False(t, ok)

	assert.True(t, c.Begin())
	_, ok = c.Lookup("a")
	assert.False(t, ok, "a new pass starts empty")
}

func TestFastDrawCache_StoresNil(t *testing.T) {
	var c FastDrawCache
	c.Begin()
	c.Store("missing", nil)
	got, ok := c.Lookup("missing")
	assert.True(t, ok)
	assert.Nil(t, got)
}
