package acrypt

import (
	"encoding/binary"

	"github.com/thinknlive/ACrypt/fnvhash"
	"github.com/thinknlive/ACrypt/prng"
)

// secrets holds the material derived from Options once, at Coder
// construction: a PRNG seeded from the PIN (or, failing that, from the
// key), and a 4-byte encryptKey folded from the key's hash.
type secrets struct {
	rng        *prng.LehmerPRNG
	havePRNG   bool
	encryptKey [4]byte
	haveKey    bool
}

// deriveSecrets implements spec's preamble derivation order: a PIN-seeded
// PRNG takes priority; a key-derived seed only applies if no PIN seed was
// available and an IV is actually requested.
func deriveSecrets(opts Options) secrets {
	var s secrets

	if opts.IVLength > 0 && opts.Pin > 0 {
		var pinBytes [4]byte
		binary.BigEndian.PutUint32(pinBytes[:], opts.Pin)
		seed := fnvhash.ComputeHash(pinBytes[:])
		s.rng = prng.New(seed)
		s.havePRNG = true
	}

	if len(opts.Key) > 0 {
		h := fnvhash.ComputeHash(opts.Key)
		binary.BigEndian.PutUint32(s.encryptKey[:], h)
		s.haveKey = true

		if !s.havePRNG && opts.IVLength > 0 {
			seed := binary.BigEndian.Uint32(s.encryptKey[:])
			s.rng = prng.New(seed)
			s.havePRNG = true
		}
	}

	return s
}

// ivBytes regenerates the deterministic IV preamble sequence, resetting the
// PRNG first so repeated calls (encode, then decode) see the same bytes.
func (s secrets) ivBytes(n int) []byte {
	if !s.havePRNG || n <= 0 {
		return nil
	}
	s.rng.Reset()
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(s.rng.Next() % 255)
	}
	return out
}

// keyBytes returns the 4-byte encryptKey preamble, or nil if no key was
// configured.
func (s secrets) keyBytes() []byte {
	if !s.haveKey {
		return nil
	}
	return s.encryptKey[:]
}
