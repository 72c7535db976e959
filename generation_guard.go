package colony

var containerIDSource atomicUint

// nextContainerID mints a fresh, process-wide unique id. Panics if the
// 64-bit space is ever exhausted, which would take creating roughly one
// container per nanosecond for several centuries.
func nextContainerID() uint64 {
	id := containerIDSource.add(1)
	if id == 0 {
		panic(ErrIDSpaceExhausted{})
	}
	return id
}

// Handle identifies an element inserted into a Colony. A stale handle
// (one whose slot has since been removed and possibly reused, or one
// minted by a different Colony) never validates against a live element.
type Handle struct {
	ContainerID uint64
	Index       int
	Generation  uint32
}

// Colony is an indexed slot container guarded by a per-slot generation
// counter and a per-container id, so a stale or foreign handle can never
// alias a live element at the same index.
type Colony[T any] struct {
	core colonyCore[T]
	gens []uint32
	id   uint64
}

// NewColony constructs an empty Colony. It does not allocate.
func NewColony[T any]() *Colony[T] {
	return &Colony[T]{}
}

// NewColonyWithCapacity constructs an empty Colony with room for at least n
// elements before it needs to grow.
func NewColonyWithCapacity[T any](n int) *Colony[T] {
	c := &Colony[T]{}
	c.Reserve(n)
	return c
}

func (c *Colony[T]) ensureID() {
	if c.id == 0 {
		c.id = nextContainerID()
	}
}

// Len returns the number of elements currently stored.
func (c *Colony[T]) Len() int { return c.core.len() }

// IsEmpty reports whether the colony has no elements.
func (c *Colony[T]) IsEmpty() bool { return c.core.isEmpty() }

// Capacity returns the number of elements that can be inserted without a
// further allocation.
func (c *Colony[T]) Capacity() int { return c.core.cap() }

// Reserve grows the colony so at least additional more elements can be
// inserted without a further allocation.
func (c *Colony[T]) Reserve(additional int) {
	c.ensureID()
	c.core.reserve(additional)
}

// Insert places value at an unspecified index and returns a handle to it.
func (c *Colony[T]) Insert(value T) Handle {
	c.ensureID()

	index, grew := c.core.insert(value)
	if grew {
		c.gens = append(c.gens, 0)
	}

	return Handle{ContainerID: c.id, Index: index, Generation: c.gens[index]}
}

func (c *Colony[T]) validate(h Handle) (int, bool) {
	if h.ContainerID != c.id {
		return 0, false
	}

	i := h.Index
	if i < 0 || i >= c.core.touched {
		return 0, false
	}

	if !c.core.occupied(i) || c.gens[i] != h.Generation {
		return 0, false
	}

	return i, true
}

// Get returns a pointer to the element referred to by handle, or
// ok=false if the handle is stale or foreign.
func (c *Colony[T]) Get(h Handle) (value *T, ok bool) {
	i, ok := c.validate(h)
	if !ok {
		return nil, false
	}
	return &c.core.slots[i].value, true
}

// Contains reports whether handle refers to a live element.
func (c *Colony[T]) Contains(h Handle) bool {
	_, ok := c.validate(h)
	return ok
}

// Remove deletes the element referred to by handle and returns it. It
// returns ok=false, leaving the colony unchanged, if the handle is stale
// or foreign.
//
// Panics with ErrGenerationExhausted if this slot's generation counter has
// been incremented 2^32 times, which needs on the order of four billion
// insert/remove cycles against the exact same index.
func (c *Colony[T]) Remove(h Handle) (value T, ok bool) {
	i, ok := c.validate(h)
	if !ok {
		var zero T
		return zero, false
	}

	c.bumpGeneration(i)
	return c.core.remove(i, true), true
}

func (c *Colony[T]) bumpGeneration(i int) {
	c.gens[i]++
	if c.gens[i] == 0 {
		panic(ErrGenerationExhausted{Index: i})
	}
}

// GetUnchecked returns a pointer to the element at index, assuming one
// exists there. Behavior is undefined if it does not.
func (c *Colony[T]) GetUnchecked(index int) *T {
	return &c.core.slots[index].value
}

// RemoveUnchecked deletes the element at index, assuming one exists
// there, and returns it. Behavior is undefined if it does not.
func (c *Colony[T]) RemoveUnchecked(index int) T {
	c.bumpGeneration(index)
	return c.core.remove(index, true)
}

// Clear removes every element, keeping the allocated capacity. Handles
// minted before the call never alias elements inserted after it: Clear
// mints a fresh container id.
func (c *Colony[T]) Clear() {
	c.core.clear()
	c.gens = c.gens[:0]
	c.id = nextContainerID()
}

// ColonyIter walks a Colony in index order, skipping vacant runs in O(1)
// per step.
type ColonyIter[T any] struct {
	colony *Colony[T]
	raw    rawIter[T]
}

// Iter returns an iterator over the colony's elements. Mutating the
// colony while an iterator derived from it is in use is a programming
// error.
func (c *Colony[T]) Iter() *ColonyIter[T] {
	return &ColonyIter[T]{colony: c, raw: newRawIter(&c.core)}
}

// Next returns the next (handle, value) pair, or ok=false once exhausted.
func (it *ColonyIter[T]) Next() (h Handle, value *T, ok bool) {
	index, value, ok := it.raw.next()
	if !ok {
		return Handle{}, nil, false
	}
	return Handle{ContainerID: it.colony.id, Index: index, Generation: it.colony.gens[index]}, value, true
}
