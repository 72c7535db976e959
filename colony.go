package colony

// minNonZeroCap is the capacity the first allocation jumps to. The original
// scales this with sizeof(T) to keep tiny elements from wasting a cache
// line; this port doesn't split on element size and just picks the common
// case.
const minNonZeroCap = 4

// slotEntry is a single array cell. value is live only while the slot is
// occupied; prev/next are live only while it's vacant and part of a
// freelist run.
type slotEntry[T any] struct {
	value      T
	prev, next indexOpt
}

// colonyCore is the guard-agnostic engine shared by Colony, FlaggedColony
// and UnguardedColony: storage growth, the freelist of vacant runs, and the
// skipfield that lets iteration jump over them. None of its methods know
// about handles, generations or occupancy bits; the three guard-specific
// wrappers layer that on top.
type colonyCore[T any] struct {
	slots    []slotEntry[T]
	skip     []uint32
	freeHead indexOpt
	touched  int
	count    int
	capacity int
}

func (c *colonyCore[T]) len() int      { return c.count }
func (c *colonyCore[T]) isEmpty() bool { return c.count == 0 }
func (c *colonyCore[T]) cap() int      { return c.capacity }

// occupied reports whether the skipfield marks i as live. This is the
// presence test used by the generation wrapper; the flag guard keeps its
// own bit instead (see flag_guard.go), and the no-guard wrapper has no
// presence test at all.
func (c *colonyCore[T]) occupied(i int) bool {
	return c.skip[i] == 0
}

// reserve grows the backing storage so that at least additional more
// elements can be inserted without a further allocation.
func (c *colonyCore[T]) reserve(additional int) {
	if additional > c.capacity-c.count {
		c.doReserve(additional)
	}
}

func (c *colonyCore[T]) doReserve(additional int) {
	newCap := c.count + additional
	if newCap < c.capacity*2 {
		newCap = c.capacity * 2
	}
	if newCap < minNonZeroCap {
		newCap = minNonZeroCap
	}
	c.growTo(newCap)
}

func (c *colonyCore[T]) growTo(newCap int) {
	newSlots := make([]slotEntry[T], c.touched, newCap)
	copy(newSlots, c.slots)
	newSkip := make([]uint32, c.touched, newCap)
	copy(newSkip, c.skip)
	c.slots = newSlots
	c.skip = newSkip
	c.capacity = newCap
}

// insert places value into a vacant slot or appends a new one, returning
// its index and whether a brand new slot was touched for the first time.
// Callers that track guard metadata in a parallel array use grew to decide
// whether to append a fresh metadata entry or reuse one in place.
func (c *colonyCore[T]) insert(value T) (index int, grew bool) {
	// A zero-value core has freeHead == someIndex(0); with no slot touched
	// yet the freelist is necessarily empty.
	if c.touched == 0 {
		c.freeHead = noIndex
	}
	if free, ok := c.freeHead.get(); ok {
		return c.insertIntoFree(free, value), false
	}
	return c.insertAtEnd(value), true
}

// Preconditions: slots[free] is vacant and the head of its skipblock.
func (c *colonyCore[T]) insertIntoFree(free int, value T) int {
	unskipLeftmost(c.skip, free)
	c.removeFromFreelist(free, free)

	c.count++
	c.slots[free].value = value
	return free
}

// Preconditions: count == touched.
func (c *colonyCore[T]) insertAtEnd(value T) int {
	if c.count == c.capacity {
		c.reserve(1)
	}

	index := c.touched
	c.slots = append(c.slots, slotEntry[T]{value: value})
	c.skip = append(c.skip, 0)
	c.touched++
	c.count++
	return index
}

// remove empties the slot at index and returns its old value. When reuse is
// false the slot is marked permanently vacant: still skipped by iteration,
// but never handed back out by a future insert. All current callers pass
// true; a spent generation counter panics in Colony instead.
func (c *colonyCore[T]) remove(index int, reuse bool) T {
	result := c.slots[index].value
	var zero T
	c.slots[index].value = zero

	start, end := skipOnRemove(c.skip, index)

	if reuse {
		hasLeft := start != index
		hasRight := end != index

		switch {
		case !hasLeft && !hasRight:
			c.stitchNoLeftNoRight(index)
		case hasLeft && !hasRight:
			c.stitchOnlyLeft(index)
		case !hasLeft && hasRight:
			c.stitchOnlyRight(index)
		default:
			c.stitchLeftAndRight(index, start, end)
		}
	}

	c.count--
	return result
}

func (c *colonyCore[T]) stitchNoLeftNoRight(index int) {
	c.addToFreelist(index, index)
}

func (c *colonyCore[T]) stitchOnlyLeft(index int) {
	next := c.slots[index-1].next
	c.slots[index-1].next = someIndex(index)

	if n, ok := next.get(); ok {
		c.slots[n].prev = someIndex(index)
	}

	c.slots[index].prev = someIndex(index - 1)
	c.slots[index].next = next
}

func (c *colonyCore[T]) stitchOnlyRight(index int) {
	prev := c.slots[index+1].prev
	c.slots[index+1].prev = someIndex(index)

	if p, ok := prev.get(); ok {
		c.slots[p].next = someIndex(index)
	} else {
		c.freeHead = someIndex(index)
	}

	c.slots[index].prev = prev
	c.slots[index].next = someIndex(index + 1)
}

func (c *colonyCore[T]) stitchLeftAndRight(index, start, end int) {
	c.removeFromFreelist(start, index-1)
	c.removeFromFreelist(index+1, end)
	c.addToFreelist(start, end)

	c.slots[index-1].next = someIndex(index)
	c.slots[index+1].prev = someIndex(index)

	c.slots[index].prev = someIndex(index - 1)
	c.slots[index].next = someIndex(index + 1)
}

// Preconditions: start and end bound a run not currently in the freelist.
func (c *colonyCore[T]) addToFreelist(start, end int) {
	c.slots[start].prev = noIndex
	c.slots[end].next = c.freeHead

	if oldHead, ok := c.freeHead.get(); ok {
		c.slots[oldHead].prev = someIndex(end)
	}

	c.freeHead = someIndex(start)
}

// Preconditions: start and end bound a single run currently in the freelist.
func (c *colonyCore[T]) removeFromFreelist(start, end int) {
	prev := c.slots[start].prev
	next := c.slots[end].next

	if p, ok := prev.get(); ok {
		c.slots[p].next = next
	} else {
		c.freeHead = next
	}

	if n, ok := next.get(); ok {
		c.slots[n].prev = prev
	}
}

// clear drops every element and resets the freelist and skipfield, keeping
// the underlying arrays and capacity intact.
func (c *colonyCore[T]) clear() {
	var zero slotEntry[T]
	for i := range c.slots {
		c.slots[i] = zero
	}
	for i := range c.skip {
		c.skip[i] = 0
	}

	c.slots = c.slots[:0]
	c.skip = c.skip[:0]
	c.touched = 0
	c.count = 0
	c.freeHead = noIndex
}
