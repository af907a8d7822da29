// Package prng implements the small deterministic generator used to derive
// the preamble's IV bytes from a seed.
package prng

// modulus is the prime 0xFFFFFFFB (2^32 - 5) the generator's multiplicative
// step is taken against.
const modulus = 0xFFFFFFFB

// multiplier is the LehmerPRNG's fixed multiplicative step.
const multiplier = 279470273

// LehmerPRNG is a seeded deterministic 32-bit multiplicative congruential
// generator: state := (state * multiplier) mod modulus.
type LehmerPRNG struct {
	seed  uint32
	state uint32
}

// New returns a LehmerPRNG seeded with seed. Reset later restores this seed.
func New(seed uint32) *LehmerPRNG {
	return &LehmerPRNG{seed: seed, state: seed}
}

// Next advances the generator and returns the new state.
func (p *LehmerPRNG) Next() uint32 {
	p.state = uint32((uint64(p.state) * multiplier) % modulus)
	return p.state
}

// Reset restores the generator to its original seed.
func (p *LehmerPRNG) Reset() {
	p.state = p.seed
}
