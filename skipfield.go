package colony

// skipfieldAt returns the value stored at i, treating any i outside
// [0, len(skip)) as 0. This is what lets skipOnRemove and unskipLeftmost
// treat the array boundary the same as an occupied neighbor, without the
// two sentinel cells the original implementation pads the array with.
func skipfieldAt(skip []uint32, i int) int {
	if i < 0 || i >= len(skip) {
		return 0
	}
	return int(skip[i])
}

// skipOnRemove marks index as vacant, merging it with any adjacent vacant
// run on either side, and returns the resulting run's [start, end] bounds.
//
// Both endpoints of a run always hold the run's length. Writing both
// endpoints unconditionally handles all four of the "lone / left / right /
// both" merge cases from a single code path: when a side has no adjacent
// run, its length contribution is 0 and start or end collapses back onto
// index. When index joins two runs it lands strictly inside the merged run
// and gets its offset from start, so every vacant cell stays non-zero; the
// other interior cells are left as they were.
func skipOnRemove(skip []uint32, index int) (start, end int) {
	left := skipfieldAt(skip, index-1)
	right := skipfieldAt(skip, index+1)

	size := left + right + 1
	start = index - left
	end = index + right

	skip[start] = uint32(size)
	skip[end] = uint32(size)
	if left > 0 && right > 0 {
		skip[index] = uint32(left + 1)
	}

	return start, end
}

// unskipLeftmost pops the head off the run starting at index, marking index
// itself occupied. If the run had more than one element, the new head at
// index+1 and the run's unchanged tail are rewritten to the shrunk length.
func unskipLeftmost(skip []uint32, index int) {
	oldSize := int(skip[index])

	skip[index] = 0
	newSize := oldSize - 1

	if newSize > 0 {
		skip[index+1] = uint32(newSize)
		skip[index+oldSize-1] = uint32(newSize)
	}
}
