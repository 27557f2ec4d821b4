package calculator

import "math"

const (
	lcgModulus    = 2147483647 // 2^31 - 1, Park–Miller
	lcgMultiplier = 16807
)

// DefaultSeed seeds simulations when the caller does not provide one.
const DefaultSeed = 42

// LCG is a Park–Miller linear congruential generator. The multiplier and
// modulus are contractual: callers display simulation numbers across renders
// and expect the exact same stream for the same seed.
type LCG struct {
	value int64
}

// NewLCG creates a generator for the given seed. Seeds that reduce to zero or
// below are shifted into the valid range instead of failing.
func NewLCG(seed int64) *LCG {
	v := seed % lcgModulus
	if v <= 0 {
		v += lcgModulus - 1
	}
	return &LCG{value: v}
}

// Float64 returns the next uniform sample in [0, 1).
func (g *LCG) Float64() float64 {
	g.value = g.value * lcgMultiplier % lcgModulus
	return float64(g.value-1) / float64(lcgModulus-1)
}

// NormFloat64 returns a standard-normal sample via the Box–Muller transform.
// Exactly two uniform draws are consumed per call and only the cosine branch
// is kept, so the position in the stream stays stable.
func (g *LCG) NormFloat64() float64 {
	u1 := math.Max(g.Float64(), 1e-12)
	u2 := math.Max(g.Float64(), 1e-12)
	radius := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	return radius * math.Cos(theta)
}
