// Package arith implements the integer arithmetic encoder/decoder: classic
// bit-plus-follow renormalization over a 32-bit code-value range, driven by
// whatever cumulative-frequency table the caller (the model) currently
// exposes.
package arith

import (
	"fmt"

	"github.com/thinknlive/ACrypt/bitio"
)

// CodeValueBits is the width of the low/high/value registers.
const CodeValueBits = 32

// TopValue is the largest representable code value.
const TopValue = (uint64(1) << CodeValueBits) - 1

const (
	quarter      = TopValue/4 + 1
	half         = 2 * quarter
	threeQuarter = 3 * quarter
)

// Error marks an internal arith error.
type Error struct{ Msg string }

func (e Error) Error() string { return "arith - " + e.Msg }

// Table is the minimal view of a cumulative-frequency table the coder
// needs. *fenwick.Table satisfies it without any adapter.
type Table interface {
	PrefixSum(i int) int64
	Size() int
	RankQuery(v int64) int
}

// Encoder is an adaptive arithmetic encoder writing through a bitio.Sink.
type Encoder struct {
	sink         *bitio.Sink
	low, high    uint64
	bitsToFollow int
}

// NewEncoder returns an Encoder writing to sink.
func NewEncoder(sink *bitio.Sink) *Encoder {
	return &Encoder{sink: sink, low: 0, high: TopValue}
}

// EncodeSymbol narrows [low, high] to symbol's sub-interval within table and
// renormalizes.
func (e *Encoder) EncodeSymbol(table Table, symbol int) {
	total := uint64(table.PrefixSum(table.Size()))
	lo := uint64(table.PrefixSum(symbol))
	hi := uint64(table.PrefixSum(symbol + 1))

	r := e.high - e.low + 1
	e.high = e.low + r*hi/total - 1
	e.low = e.low + r*lo/total

	for {
		switch {
		case e.high < half:
			e.sink.WriteBit(0)
			e.followBits(1)
		case e.low >= half:
			e.sink.WriteBit(1)
			e.followBits(0)
			e.low -= half
			e.high -= half
		case e.low >= quarter && e.high < threeQuarter:
			e.bitsToFollow++
			e.low -= quarter
			e.high -= quarter
		default:
			return
		}
		e.low *= 2
		e.high = e.high*2 + 1
	}
}

// followBits flushes the pending straddle counter as bitsToFollow copies of
// opposite, then resets the counter.
func (e *Encoder) followBits(opposite byte) {
	for ; e.bitsToFollow > 0; e.bitsToFollow-- {
		e.sink.WriteBit(opposite)
	}
}

// Finish emits the final disambiguating bits and flushes the sink.
func (e *Encoder) Finish() []byte {
	e.bitsToFollow++
	if e.low < quarter {
		e.sink.WriteBit(0)
		e.followBits(1)
	} else {
		e.sink.WriteBit(1)
		e.followBits(0)
	}
	return e.sink.Finish()
}

// Decoder is the mirror-image adaptive arithmetic decoder reading through a
// bitio.Source.
type Decoder struct {
	src             *bitio.Source
	low, high, value uint64
}

// NewDecoder returns a Decoder reading from src, priming value with the
// first CodeValueBits bits.
func NewDecoder(src *bitio.Source) (*Decoder, error) {
	d := &Decoder{src: src, low: 0, high: TopValue}
	for i := 0; i < CodeValueBits; i++ {
		b, err := src.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("arith: priming decoder: %w", err)
		}
		d.value = d.value*2 + uint64(b)
	}
	return d, nil
}

// DecodeSymbol finds the symbol whose sub-interval in table contains the
// current value, narrows [low, high] to match, and renormalizes.
func (d *Decoder) DecodeSymbol(table Table) (int, error) {
	total := uint64(table.PrefixSum(table.Size()))
	r := d.high - d.low + 1
	cum := ((d.value-d.low+1)*total - 1) / r
	symbol := table.RankQuery(int64(cum))

	lo := uint64(table.PrefixSum(symbol))
	hi := uint64(table.PrefixSum(symbol + 1))
	d.high = d.low + r*hi/total - 1
	d.low = d.low + r*lo/total

	if err := d.renormalize(); err != nil {
		return 0, err
	}
	return symbol, nil
}

func (d *Decoder) renormalize() error {
	for {
		switch {
		case d.high < half:
			// no emission, no value adjustment
		case d.low >= half:
			d.low -= half
			d.high -= half
			d.value -= half
		case d.low >= quarter && d.high < threeQuarter:
			d.low -= quarter
			d.high -= quarter
			d.value -= quarter
		default:
			return nil
		}
		d.low *= 2
		d.high = d.high*2 + 1
		b, err := d.src.ReadBit()
		if err != nil {
			return fmt.Errorf("arith: renormalize: %w", err)
		}
		d.value = d.value*2 + uint64(b)
	}
}
