package engine

import "math/rand"

// bag is the 7-bag piece generator. Given the same seed, Next()
// produces a reproducible stream — test suites anchor on this
// (spec.md §4.4, invariant 2).
type bag struct {
	rng     *rand.Rand
	pending []PieceKind
}

func newBag(seed uint64) *bag {
	return &bag{rng: rand.New(rand.NewSource(int64(seed)))}
}

var allKinds = [7]PieceKind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

func (b *bag) refill() {
	next := allKinds
	b.rng.Shuffle(len(next), func(i, j int) {
		next[i], next[j] = next[j], next[i]
	})
	b.pending = append(b.pending, next[:]...)
}

// next returns the next piece kind, generating a fresh shuffled bag
// of all seven kinds whenever the current one runs dry.
func (b *bag) next() PieceKind {
	if len(b.pending) == 0 {
		b.refill()
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}
