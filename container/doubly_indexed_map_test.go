package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fontanf/stablesolver-sub000/container"
)

func TestDoublyIndexedMap_SetMoveBetweenClasses(t *testing.T) {
	m := container.NewDoublyIndexedMap(6, 3)
	assert.Equal(t, container.Unset, m.ClassOf(0))

	m.Set(0, 1)
	m.Set(1, 1)
	m.Set(2, 0)
	assert.Equal(t, 1, m.ClassOf(0))
	assert.Equal(t, 2, m.NumberOfElements(1))
	assert.Equal(t, 1, m.NumberOfElements(0))

	// Move 0 from class 1 to class 2: O(1), must not disturb class 1's
	// other member.
	m.Set(0, 2)
	assert.Equal(t, 2, m.ClassOf(0))
	assert.Equal(t, 1, m.NumberOfElements(1))
	assert.ElementsMatch(t, []int{1}, m.Class(1))
	assert.ElementsMatch(t, []int{0}, m.Class(2))
}

func TestDoublyIndexedMap_SetUnset(t *testing.T) {
	m := container.NewDoublyIndexedMap(4, 2)
	m.Set(0, 0)
	assert.True(t, m.Contains(0))
	m.Set(0, container.Unset)
	assert.False(t, m.Contains(0))
	assert.Equal(t, 0, m.NumberOfElements(0))
}

func TestDoublyIndexedMap_TotalElements(t *testing.T) {
	m := container.NewDoublyIndexedMap(5, 2)
	m.Set(0, 0)
	m.Set(1, 1)
	m.Set(2, 1)
	assert.Equal(t, 3, m.TotalElements())
}

func TestDoublyIndexedMap_ClassOutOfRangePanics(t *testing.T) {
	m := container.NewDoublyIndexedMap(3, 2)
	assert.Panics(t, func() { m.Set(0, 2) })
}
