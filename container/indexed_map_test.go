package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fontanf/stablesolver-sub000/container"
)

func TestIndexedMap_SetGetDefault(t *testing.T) {
	m := container.NewIndexedMap[int](5, 0)
	assert.Equal(t, 0, m.Get(2))
	assert.False(t, m.Contains(2))

	m.Set(2, 7)
	assert.Equal(t, 7, m.Get(2))
	assert.True(t, m.Contains(2))
	assert.Equal(t, 1, m.NumberOfElements())

	m.Set(2, 0)
	assert.False(t, m.Contains(2))
	assert.Equal(t, 0, m.NumberOfElements())
}

func TestIndexedMap_KeysOnlyNonDefault(t *testing.T) {
	m := container.NewIndexedMap[int](5, -1)
	m.Set(0, 3)
	m.Set(3, 3)
	keys := append([]int(nil), m.Keys()...)
	assert.ElementsMatch(t, []int{0, 3}, keys)
}

func TestIndexedMap_Clear(t *testing.T) {
	m := container.NewIndexedMap[int](4, 0)
	m.Set(1, 5)
	m.Clear()
	assert.Equal(t, 0, m.NumberOfElements())
	assert.Equal(t, 0, m.Get(1))
}
