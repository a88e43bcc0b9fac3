// Package permute generates the deterministic, password-seeded
// permutation over carrier slot indices.
//
// The generator is a compatibility surface, not just an implementation
// detail: extraction replays the permutation from (seed, n) alone, so
// the exact sequence produced here must never change. The PRNG is a
// splitmix64 stream and the shuffle is a standard Fisher-Yates; both
// are pinned by golden-vector tests. Do not substitute math/rand or any
// other source whose stream is not guaranteed stable across releases.
package permute

// splitmix64 is the pinned PRNG behind the shuffle.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Generate produces the permutation of [0, n) for the given seed. Two
// calls with identical (seed, n) yield identical sequences on any
// platform, indefinitely.
func Generate(seed uint32, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	rng := splitmix64{state: uint64(seed)}
	for i := n - 1; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
