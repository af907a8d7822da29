package acrypt

import (
	"github.com/thinknlive/ACrypt/arith"
	"github.com/thinknlive/ACrypt/bitio"
	"github.com/thinknlive/ACrypt/internal/xlog"
	"github.com/thinknlive/ACrypt/lzw"
	"github.com/thinknlive/ACrypt/model"
)

// Coder encodes and decodes byte streams with a shared configuration. A
// Coder is not safe for concurrent use: Encode/Decode build a fresh Model
// and Encoder/Decoder per call, but the embedded secrets (in particular the
// PRNG) are reset and replayed from the same starting state on every call,
// which concurrent callers would race on.
type Coder struct {
	opts      Options
	secrets   secrets
	lastStats Stats
}

// New returns a Coder configured by opts.
func New(opts Options) *Coder {
	return &Coder{opts: opts, secrets: deriveSecrets(opts)}
}

// Encode compresses and obfuscates data.
func (c *Coder) Encode(data []byte) ([]byte, error) {
	out, err := c.encode(data, false)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	return out, nil
}

// Decode reverses Encode. A key, PIN, or IV-length mismatch is reported as
// an empty, nil-error result, not an error: the caller cannot distinguish
// "wrong secret" from "no payload" by design, only by checking len(out).
// A bit-level failure while decoding the payload (the usual symptom of a
// desynchronized coder) is reported the same way.
func (c *Coder) Decode(buf []byte) ([]byte, error) {
	out, mismatch, err := c.decode(buf, false)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if mismatch {
		return nil, nil
	}
	return out, nil
}

// LZWEncode runs data through the LZW front end before arithmetic coding.
func (c *Coder) LZWEncode(data []byte) ([]byte, error) {
	codes := lzw.New().Encode(data)
	out, err := c.encode(splitCodesToBytes(codes), true)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}
	c.lastStats.BytesIn = len(data)
	return out, nil
}

// LZWDecode reverses LZWEncode.
func (c *Coder) LZWDecode(buf []byte) ([]byte, error) {
	halves, mismatch, err := c.decode(buf, true)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if mismatch {
		return nil, nil
	}
	codes, err := joinBytesToCodes(halves)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	out, err := lzw.New().Decode(codes)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	c.lastStats.BytesOut = len(out)
	return out, nil
}

// encode drives the full preamble-then-payload state machine for writing.
func (c *Coder) encode(data []byte, useLZW bool) ([]byte, error) {
	mdl, err := model.New(c.opts.CodingStep)
	if err != nil {
		return nil, err
	}
	sink := bitio.NewSink()
	enc := arith.NewEncoder(sink)

	xlog.Transition(c.opts.Logger, "encode", xlog.PhasePreamble)
	if err := c.encodeMagicPhase(enc, mdl, c.secrets.ivBytes(c.opts.IVLength)); err != nil {
		return nil, err
	}
	if err := c.encodeMagicPhase(enc, mdl, c.secrets.keyBytes()); err != nil {
		return nil, err
	}
	xlog.Transition(c.opts.Logger, "encode", xlog.PhasePayload)

	for _, b := range data {
		enc.EncodeSymbol(mdl.CurrentTable(), int(b))
		if err := mdl.Update(int(b)); err != nil {
			return nil, err
		}
	}
	enc.EncodeSymbol(mdl.CurrentTable(), model.EOF)
	if err := mdl.Update(model.EOF); err != nil {
		return nil, err
	}

	out := enc.Finish()
	c.lastStats = Stats{BytesIn: len(data), BytesOut: len(out), UsedLZW: useLZW}
	return out, nil
}

// decode drives the mirror-image state machine for reading. The bool
// return reports an AuthMismatch: the preamble decoded to bytes other than
// what this Coder's secrets expect, or reading the payload's bits failed.
func (c *Coder) decode(buf []byte, useLZW bool) ([]byte, bool, error) {
	mdl, err := model.New(c.opts.CodingStep)
	if err != nil {
		return nil, false, err
	}
	src := bitio.NewSource(buf)
	dec, err := arith.NewDecoder(src)
	if err != nil {
		return nil, false, err
	}

	xlog.Transition(c.opts.Logger, "decode", xlog.PhasePreamble)
	mismatch, err := c.decodeMagicPhase(dec, mdl, c.secrets.ivBytes(c.opts.IVLength))
	if err != nil {
		return nil, false, err
	}
	if mismatch {
		c.lastStats = Stats{BytesIn: len(buf), BytesOut: 0, UsedLZW: useLZW}
		return nil, true, nil
	}
	mismatch, err = c.decodeMagicPhase(dec, mdl, c.secrets.keyBytes())
	if err != nil {
		return nil, false, err
	}
	if mismatch {
		c.lastStats = Stats{BytesIn: len(buf), BytesOut: 0, UsedLZW: useLZW}
		return nil, true, nil
	}
	xlog.Transition(c.opts.Logger, "decode", xlog.PhasePayload)

	var out []byte
	for {
		sym, err := dec.DecodeSymbol(mdl.CurrentTable())
		if err != nil {
			c.lastStats = Stats{BytesIn: len(buf), BytesOut: 0, UsedLZW: useLZW}
			return nil, true, nil
		}
		if sym == model.EOF {
			break
		}
		if sym == model.Unused {
			return nil, false, ErrUnusedSymbol
		}
		out = append(out, byte(sym))
		if err := mdl.Update(sym); err != nil {
			return nil, false, err
		}
	}

	c.lastStats = Stats{BytesIn: len(buf), BytesOut: len(out), UsedLZW: useLZW}
	return out, false, nil
}

// encodeMagicPhase forces each byte of seq through the model's magic
// pathway, chaining SetSymbolMagic calls without an intervening Update so
// the same magic table is reused across the whole phase, then resets every
// context table to its pristine shape once the phase ends, per the
// preamble protocol's IV-phase/key-phase boundary.
func (c *Coder) encodeMagicPhase(enc *arith.Encoder, mdl *model.Model, seq []byte) error {
	prev := -1
	for _, b := range seq {
		sym := int(b)
		if err := mdl.SetSymbolMagic(sym, prev); err != nil {
			return err
		}
		enc.EncodeSymbol(mdl.CurrentTable(), sym)
		prev = sym
	}
	return mdl.ResetModelSymbols()
}

// decodeMagicPhase mirrors encodeMagicPhase: it forces the same magic
// distribution the encoder would have for a matching secret, decodes
// through it, and reports a mismatch the moment a decoded byte disagrees
// with what this Coder expected.
func (c *Coder) decodeMagicPhase(dec *arith.Decoder, mdl *model.Model, seq []byte) (bool, error) {
	prev := -1
	for _, b := range seq {
		expected := int(b)
		if err := mdl.SetSymbolMagic(expected, prev); err != nil {
			return false, err
		}
		sym, err := dec.DecodeSymbol(mdl.CurrentTable())
		if err != nil {
			return false, err
		}
		if sym != expected {
			return true, nil
		}
		prev = expected
	}
	return false, mdl.ResetModelSymbols()
}

// splitCodesToBytes interleaves LZW codes' high bytes ahead of all low
// bytes, so the order-1 model learns two distinct distributions instead of
// one blended one.
func splitCodesToBytes(codes []int) []byte {
	out := make([]byte, 0, len(codes)*2)
	for _, code := range codes {
		out = append(out, byte(code>>8))
	}
	for _, code := range codes {
		out = append(out, byte(code))
	}
	return out
}

// joinBytesToCodes reverses splitCodesToBytes.
func joinBytesToCodes(b []byte) ([]int, error) {
	if len(b)%2 != 0 {
		return nil, ErrMalformedStream
	}
	n := len(b) / 2
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		codes[i] = int(b[i])<<8 | int(b[n+i])
	}
	return codes, nil
}
