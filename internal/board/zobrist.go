package board

// Zobrist-style hashing for position identity, used by the tactical
// reader's read-result cache (internal/tactics) and the on-disk cache in
// internal/storage. Reproducible seed, same xorshift64* construction the
// teacher's chess engine uses for its own Zobrist keys.

type prng struct{ state uint64 }

func newPRNG(seed uint64) *prng { return &prng{state: seed} }

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// maxGridCells is the number of cells in the largest padded grid this
// package ever allocates (MaxSize+2 on a side).
const maxGridCells = (MaxSize + 2) * (MaxSize + 2)

// zobristPoint[color][point] holds the XOR key for a stone of that color
// on that point, keyed by the flat grid index (valid across all board
// sizes since smaller boards use a subset of the largest grid's indices).
var zobristPoint [3][maxGridCells]uint64
var zobristSide [3]uint64

func init() {
	rng := newPRNG(0xB0A7D15C0FFEE42)
	for c := Black; c <= White; c++ {
		for i := range zobristPoint[c] {
			zobristPoint[c][i] = rng.next()
		}
	}
	for c := range zobristSide {
		zobristSide[c] = rng.next()
	}
}

func zobristKey(c Color, p Point) uint64 {
	idx := int(p)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(zobristPoint[c]) {
		idx = idx % len(zobristPoint[c])
	}
	return zobristPoint[c][idx]
}
