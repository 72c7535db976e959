package colony

// indexOpt is an optional slot index, ported from original_source/src/index_opt.rs.
//
// Rust's IndexOpt reserves usize::MAX as its "none" sentinel so Option<Handle>
// stays null-pointer-optimized. Go's slot indices are plain ints, so the
// sentinel here is -1 instead — the shape other arena-style code in the pack
// uses for "no index" (e.g. the free-list head convention in
// sam-rendell-rs-scan__arena.go), and it composes cleanly with Go's signed int.
type indexOpt int

const noIndex indexOpt = -1

func someIndex(i int) indexOpt {
	return indexOpt(i)
}

func (o indexOpt) get() (int, bool) {
	if o < 0 {
		return 0, false
	}
	return int(o), true
}

func (o indexOpt) isNone() bool {
	return o < 0
}
