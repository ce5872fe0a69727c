package container_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fontanf/stablesolver-sub000/container"
)

func TestIndexedSet_AddContainsRemove(t *testing.T) {
	s := container.NewIndexedSet(5)
	assert.Equal(t, 0, s.Size())
	for i := 0; i < 5; i++ {
		assert.False(t, s.Contains(i))
	}

	s.Add(2)
	s.Add(4)
	assert.Equal(t, 2, s.Size())
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(0))

	s.Remove(2)
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.Contains(2))
	assert.True(t, s.Contains(4))
}

func TestIndexedSet_InOutPartition(t *testing.T) {
	s := container.NewIndexedSet(4)
	s.Add(1)
	s.Add(3)

	in := append([]int(nil), s.In()...)
	out := append([]int(nil), s.Out()...)
	assert.ElementsMatch(t, []int{1, 3}, in)
	assert.ElementsMatch(t, []int{0, 2}, out)
}

func TestIndexedSet_ClearFill(t *testing.T) {
	s := container.NewIndexedSet(3)
	s.Fill()
	assert.Equal(t, 3, s.Size())
	s.Clear()
	assert.Equal(t, 0, s.Size())
}

func TestIndexedSet_DoubleAddPanics(t *testing.T) {
	s := container.NewIndexedSet(3)
	s.Add(0)
	assert.Panics(t, func() { s.Add(0) })
}

func TestIndexedSet_DoubleRemovePanics(t *testing.T) {
	s := container.NewIndexedSet(3)
	assert.Panics(t, func() { s.Remove(0) })
}

func TestIndexedSet_OutOfRangePanics(t *testing.T) {
	s := container.NewIndexedSet(3)
	assert.Panics(t, func() { s.Contains(3) })
	assert.Panics(t, func() { s.Add(-1) })
}

func TestIndexedSet_ShuffleInPreservesMembership(t *testing.T) {
	s := container.NewIndexedSet(10)
	for i := 0; i < 6; i++ {
		s.Add(i)
	}
	rng := rand.New(rand.NewSource(1))
	s.ShuffleIn(rng)
	require.Equal(t, 6, s.Size())
	for i := 0; i < 6; i++ {
		assert.True(t, s.Contains(i))
	}
	for i := 6; i < 10; i++ {
		assert.False(t, s.Contains(i))
	}
}

func TestIndexedSet_Clone(t *testing.T) {
	s := container.NewIndexedSet(4)
	s.Add(0)
	s.Add(2)
	clone := s.Clone()
	clone.Add(1)
	assert.True(t, clone.Contains(1))
	assert.False(t, s.Contains(1), "mutating the clone must not affect the original")
}
