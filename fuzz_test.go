package colony

import "testing"

// FuzzColonyModel feeds arbitrary byte sequences through the model,
// alternating insert/remove based on each byte. This is the harness
// for the skipfield/freelist interaction: every interleaving the fuzzer
// discovers gets checked against the plain-slice oracle.
func FuzzColonyModel(f *testing.F) {
	f.Add([]byte{0, 0, 1, 0, 2, 1, 0})
	f.Add([]byte{0, 0, 0, 0, 0, 3, 1, 5, 1})

	f.Fuzz(func(t *testing.T, ops []byte) {
		m := newColonyModel()
		var live []int

		for _, b := range ops {
			if len(live) == 0 || b&1 == 0 {
				index := m.insert(int(b))
				live = append(live, index)
				continue
			}

			pick := int(b>>1) % len(live)
			index := live[pick]
			live[pick] = live[len(live)-1]
			live = live[:len(live)-1]
			m.remove(t, index)
		}

		m.check(t)
	})
}

// TestColonyRandomizedStress runs long randomized insert/remove sequences
// using the runtime's fast PRNG, picking random live indices to remove so
// long sequences actually exercise deep skipblock merging rather than
// mostly inserting.
func TestColonyRandomizedStress(t *testing.T) {
	const rounds = 20
	const opsPerRound = 2000

	for round := 0; round < rounds; round++ {
		m := newColonyModel()
		var live []int

		for i := 0; i < opsPerRound; i++ {
			remove := len(live) > 0 && cheapRandN(3) == 0
			if !remove {
				index := m.insert(int(cheapRandN(1 << 16)))
				live = append(live, index)
				continue
			}

			pick := int(cheapRandN(uint32(len(live))))
			index := live[pick]
			live[pick] = live[len(live)-1]
			live = live[:len(live)-1]
			m.remove(t, index)
		}

		m.check(t)
	}
}
