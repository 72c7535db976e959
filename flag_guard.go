package colony

// FlaggedColony is an indexed slot container guarded by a single
// occupancy bit per slot. Handles are bare indices: removing and
// reinserting at the same index is indistinguishable to a caller still
// holding the old index, unlike Colony. Which of two aliasing indices
// "wins" after such a sequence is unspecified.
type FlaggedColony[T any] struct {
	core colonyCore[T]
	occ  bitArray
}

// NewFlaggedColony constructs an empty FlaggedColony. It does not allocate.
func NewFlaggedColony[T any]() *FlaggedColony[T] {
	return &FlaggedColony[T]{}
}

// NewFlaggedColonyWithCapacity constructs an empty FlaggedColony with room
// for at least n elements before it needs to grow.
func NewFlaggedColonyWithCapacity[T any](n int) *FlaggedColony[T] {
	c := &FlaggedColony[T]{}
	c.Reserve(n)
	return c
}

func (c *FlaggedColony[T]) Len() int      { return c.core.len() }
func (c *FlaggedColony[T]) IsEmpty() bool { return c.core.isEmpty() }
func (c *FlaggedColony[T]) Capacity() int { return c.core.cap() }

// Reserve grows the colony so at least additional more elements can be
// inserted without a further allocation.
func (c *FlaggedColony[T]) Reserve(additional int) {
	c.core.reserve(additional)
}

// Insert places value at an unspecified index and returns that index.
func (c *FlaggedColony[T]) Insert(value T) int {
	index, _ := c.core.insert(value)
	c.occ.growTo(index + 1)
	c.occ.set(index)
	return index
}

func (c *FlaggedColony[T]) validate(index int) bool {
	if index < 0 || index >= c.core.touched {
		return false
	}
	return c.occ.get(index)
}

// Get returns a pointer to the element at index, or ok=false if the flag
// says it's vacant or index is out of bounds.
func (c *FlaggedColony[T]) Get(index int) (value *T, ok bool) {
	if !c.validate(index) {
		return nil, false
	}
	return &c.core.slots[index].value, true
}

// Contains reports whether index currently refers to a live element.
func (c *FlaggedColony[T]) Contains(index int) bool {
	return c.validate(index)
}

// Remove deletes the element at index and returns it, or ok=false, leaving
// the colony unchanged, if the flag says it's already vacant.
func (c *FlaggedColony[T]) Remove(index int) (value T, ok bool) {
	if !c.validate(index) {
		var zero T
		return zero, false
	}
	c.occ.clear(index)
	return c.core.remove(index, true), true
}

// GetUnchecked returns a pointer to the element at index, assuming one
// exists there. Behavior is undefined if it does not.
func (c *FlaggedColony[T]) GetUnchecked(index int) *T {
	return &c.core.slots[index].value
}

// RemoveUnchecked deletes the element at index, assuming one exists
// there, and returns it. Behavior is undefined if it does not.
func (c *FlaggedColony[T]) RemoveUnchecked(index int) T {
	c.occ.clear(index)
	return c.core.remove(index, true)
}

// Clear removes every element, keeping the allocated capacity.
func (c *FlaggedColony[T]) Clear() {
	c.core.clear()
	for i := range c.occ.words {
		c.occ.words[i] = 0
	}
}

// FlaggedColonyIter walks a FlaggedColony in index order, skipping vacant
// runs in O(1) per step.
type FlaggedColonyIter[T any] struct {
	raw rawIter[T]
}

// Iter returns an iterator over the colony's elements. Mutating the
// colony while an iterator derived from it is in use is a programming
// error.
func (c *FlaggedColony[T]) Iter() *FlaggedColonyIter[T] {
	return &FlaggedColonyIter[T]{raw: newRawIter(&c.core)}
}

// Next returns the next (index, value) pair, or ok=false once exhausted.
func (it *FlaggedColonyIter[T]) Next() (index int, value *T, ok bool) {
	return it.raw.next()
}
