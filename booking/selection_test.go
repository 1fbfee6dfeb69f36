package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_ToggleIsInvolution(t *testing.T) {
	var s Selection
	assert.True(t, s.Toggle("seat1"))
	assert.True(t, s.Has("seat1"))
	assert.False(t, s.Toggle("seat1"))
	assert.False(t, s.Has("seat1"))
	assert.Zero(t, s.Len())
}

func TestSelection_PreservesInsertionOrder(t *testing.T) {
	var s Selection
	s.Toggle("b")
	s.Toggle("a")
	s.Toggle("c")
	s.Toggle("a")
	assert.Equal(t, []string{"b", "c"}, s.Ids())
}

func TestSelection_Clear(t *testing.T) {
	var s Selection
	s.Toggle("seat1")
	s.Toggle("seat2")
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Ids())
}

func TestSelection_IdsReturnsCopy(t *testing.T) {
	var s Selection
	s.Toggle("seat1")
	ids := s.Ids()
	ids[0] = "mutated"
	assert.Equal(t, []string{"seat1"}, s.Ids())
}
