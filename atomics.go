package colony

import "sync/atomic"

// atomicUint is a monotonic counter backed by an atomic.Uint64.
//
// Adapted from the teacher's Atoms.go: the original AtomicUint wrapped a
// uintptr so it could be used from 32-bit targets too, but the container-id
// space (§4.1, §9) wants a width that is infeasible to exhaust within a
// process lifetime regardless of GOARCH, so this wraps atomic.Uint64 instead.
type atomicUint struct {
	v atomic.Uint64
}

func (u *atomicUint) add(d uint64) uint64 {
	return u.v.Add(d)
}

func (u *atomicUint) load() uint64 {
	return u.v.Load()
}
