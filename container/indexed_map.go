package container

// IndexedMap carries one value of type V per index in 0..capacity-1,
// defaulting every index to defaultValue. Iteration (via Keys) only
// visits indices whose value currently differs from defaultValue, so a
// freshly constructed or Clear-ed map iterates in O(1).
//
// Complexity: Set/Get/Contains O(1) amortized, Clear O(capacity).
type IndexedMap[V comparable] struct {
	set      *IndexedSet
	values   []V
	defaultV V
}

// NewIndexedMap returns an IndexedMap over 0..capacity-1, every index
// initially holding defaultValue.
func NewIndexedMap[V comparable](capacity int, defaultValue V) *IndexedMap[V] {
	m := &IndexedMap[V]{
		set:      NewIndexedSet(capacity),
		values:   make([]V, capacity),
		defaultV: defaultValue,
	}
	for i := range m.values {
		m.values[i] = defaultValue
	}
	return m
}

// Capacity returns the size of the index universe.
func (m *IndexedMap[V]) Capacity() int { return m.set.Capacity() }

// Contains reports whether i currently holds a non-default value.
func (m *IndexedMap[V]) Contains(i int) bool { return m.set.Contains(i) }

// Get returns the value stored at i (defaultValue if never Set, or reset).
func (m *IndexedMap[V]) Get(i int) V {
	m.set.checkRange(i)
	return m.values[i]
}

// Set stores v at index i. If v equals the map's default, i is removed from
// the iteration set (its stored value is still reset to the default); if v
// differs from the default and i was not already present, i is added.
// Complexity: O(1) amortized.
func (m *IndexedMap[V]) Set(i int, v V) {
	m.set.checkRange(i)
	wasIn := m.set.Contains(i)
	isDefault := v == m.defaultV
	switch {
	case isDefault && wasIn:
		m.set.Remove(i)
		m.values[i] = m.defaultV
	case isDefault && !wasIn:
		// already default, no-op
	case !isDefault && wasIn:
		m.values[i] = v
	case !isDefault && !wasIn:
		m.set.Add(i)
		m.values[i] = v
	}
}

// NumberOfElements returns how many indices hold a non-default value.
func (m *IndexedMap[V]) NumberOfElements() int { return m.set.Size() }

// Keys returns the live backing slice of indices currently holding a
// non-default value (same stability caveat as IndexedSet.In).
func (m *IndexedMap[V]) Keys() []int { return m.set.In() }

// Clear resets every index to the default value. Complexity: O(capacity).
func (m *IndexedMap[V]) Clear() {
	m.set.Clear()
	for i := range m.values {
		m.values[i] = m.defaultV
	}
}
