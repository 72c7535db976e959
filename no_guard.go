package colony

// UnguardedColony is an indexed slot container with no per-slot tag at
// all. There is no safe way to tell whether an index still refers to a
// live element; every lookup and removal is an unchecked operation and
// callers are responsible for tracking validity themselves.
type UnguardedColony[T any] struct {
	core colonyCore[T]
}

// NewUnguardedColony constructs an empty UnguardedColony. It does not
// allocate.
func NewUnguardedColony[T any]() *UnguardedColony[T] {
	return &UnguardedColony[T]{}
}

// NewUnguardedColonyWithCapacity constructs an empty UnguardedColony with
// room for at least n elements before it needs to grow.
func NewUnguardedColonyWithCapacity[T any](n int) *UnguardedColony[T] {
	c := &UnguardedColony[T]{}
	c.Reserve(n)
	return c
}

func (c *UnguardedColony[T]) Len() int      { return c.core.len() }
func (c *UnguardedColony[T]) IsEmpty() bool { return c.core.isEmpty() }
func (c *UnguardedColony[T]) Capacity() int { return c.core.cap() }

// Reserve grows the colony so at least additional more elements can be
// inserted without a further allocation.
func (c *UnguardedColony[T]) Reserve(additional int) {
	c.core.reserve(additional)
}

// Insert places value at an unspecified index and returns that index.
func (c *UnguardedColony[T]) Insert(value T) int {
	index, _ := c.core.insert(value)
	return index
}

// GetUnchecked returns a pointer to the element at index, assuming one
// exists there. Behavior is undefined if it does not.
func (c *UnguardedColony[T]) GetUnchecked(index int) *T {
	return &c.core.slots[index].value
}

// RemoveUnchecked deletes the element at index, assuming one exists
// there, and returns it. Behavior is undefined if it does not.
func (c *UnguardedColony[T]) RemoveUnchecked(index int) T {
	return c.core.remove(index, true)
}

// Clear removes every element, keeping the allocated capacity.
func (c *UnguardedColony[T]) Clear() {
	c.core.clear()
}

// UnguardedColonyIter walks an UnguardedColony in index order, skipping
// vacant runs in O(1) per step.
type UnguardedColonyIter[T any] struct {
	raw rawIter[T]
}

// Iter returns an iterator over the colony's elements. Mutating the
// colony while an iterator derived from it is in use is a programming
// error.
func (c *UnguardedColony[T]) Iter() *UnguardedColonyIter[T] {
	return &UnguardedColonyIter[T]{raw: newRawIter(&c.core)}
}

// Next returns the next (index, value) pair, or ok=false once exhausted.
func (it *UnguardedColonyIter[T]) Next() (index int, value *T, ok bool) {
	return it.raw.next()
}
