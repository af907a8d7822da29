// Package model implements the order-1 adaptive symbol model: one Fenwick
// cumulative-frequency table per previous-symbol context, plus the "magic"
// pathway used to encode the key/PIN/IV preamble at (near) zero cost.
package model

import "github.com/thinknlive/ACrypt/fenwick"

// Alphabet layout, fixed by the wire format: 256 literal byte values, one
// unused slot kept for symmetry, and a trailing EOF symbol.
const (
	NumChars   = 256
	Unused     = NumChars     // 256
	EOF        = NumChars + 1 // 257
	NumSymbols = NumChars + 2 // 258
)

// MaxFrequency is the upper bound any table's total may reach before it
// must be rescaled.
const MaxFrequency = (1 << 30) - 1

// ScaleValue is the divisor Update rescales a context table by once its
// total exceeds MaxFrequency.
const ScaleValue = 1 << 14

// DefaultCodingStep is used when a caller passes a zero or negative step.
const DefaultCodingStep = 256

// Error marks an internal model error.
type Error struct{ Msg string }

func (e Error) Error() string { return "model - " + e.Msg }

// ErrOverflow is returned when a frequency table's total would exceed
// MaxFrequency.
var ErrOverflow = Error{"frequency table overflow"}

// Model owns one Fenwick table per previous-symbol context and the scratch
// table used while encoding preamble bytes.
type Model struct {
	contextTable [NumSymbols]*fenwick.Table
	contextTotal [NumSymbols]int64
	magic        *fenwick.Table
	current      *fenwick.Table
	prevSymbol   int
	codingStep   int64
}

// New builds a Model with all context tables in their initial shape. A
// codingStep of zero or less is treated as DefaultCodingStep.
func New(codingStep int) (*Model, error) {
	if codingStep <= 0 {
		codingStep = DefaultCodingStep
	}
	m := &Model{codingStep: int64(codingStep)}
	if err := m.ResetModelSymbols(); err != nil {
		return nil, err
	}
	return m, nil
}

// initialCounts returns the S-entry array every context table starts from:
// 128 for each literal byte, 1 for the unused slot, 1 for EOF.
func initialCounts() []int64 {
	counts := make([]int64, NumSymbols)
	for i := 0; i < NumChars; i++ {
		counts[i] = 128
	}
	counts[Unused] = 1
	counts[EOF] = 1
	return counts
}

// ResetModelSymbols reconstructs every context table to its initial shape
// and clears prevSymbol, so the next symbol is coded with no context.
func (m *Model) ResetModelSymbols() error {
	for c := 0; c < NumSymbols; c++ {
		table := fenwick.New(initialCounts())
		total := table.PrefixSum(NumSymbols)
		if total > MaxFrequency {
			return ErrOverflow
		}
		m.contextTable[c] = table
		m.contextTotal[c] = total
	}
	m.magic = fenwick.New(make([]int64, NumSymbols))
	m.current = m.contextTable[0]
	m.prevSymbol = -1
	return nil
}

// CurrentTable returns the table the coder should use for the next symbol.
func (m *Model) CurrentTable() *fenwick.Table {
	return m.current
}

// Update folds symbol into the context table that was just used (the
// previous symbol's context, or symbol's own context if there was none
// yet), rescaling first if needed, and advances the order-1 context.
func (m *Model) Update(symbol int) error {
	c := m.prevSymbol
	if c < 0 {
		c = symbol
	}
	if m.contextTotal[c] > MaxFrequency {
		m.contextTable[c].Scale(ScaleValue)
		m.contextTotal[c] = m.contextTable[c].PrefixSum(NumSymbols)
	}
	m.contextTable[c].Add(symbol, m.codingStep)
	m.contextTotal[c] += m.codingStep
	m.prevSymbol = symbol
	m.current = m.contextTable[symbol]
	return nil
}

// SetSymbolMagic installs (or mutates) the scratch magic table so that
// symbol costs essentially zero bits, while keeping decoder state
// reproducible: prevSymbol < 0 starts a fresh magic table; otherwise the
// currently exposed table is mutated in place, matching the two-step
// preamble-byte chaining the coder drives it with.
func (m *Model) SetSymbolMagic(symbol, prevSymbol int) error {
	if prevSymbol < 0 {
		counts := make([]int64, NumSymbols)
		for i := range counts {
			counts[i] = 1
		}
		counts[symbol] = MaxFrequency - NumSymbols
		m.magic = fenwick.New(counts)
		if total := m.magic.PrefixSum(NumSymbols); total > MaxFrequency {
			return ErrOverflow
		}
		m.current = m.magic
		return nil
	}

	tbl := m.current
	tbl.Set(prevSymbol, 1)
	tbl.Set(symbol, MaxFrequency-int64(NumSymbols))
	if total := tbl.PrefixSum(NumSymbols); total > MaxFrequency {
		return ErrOverflow
	}
	return nil
}

// PrevSymbol reports the last symbol folded into the model via Update, or
// -1 if none has been folded in yet this phase.
func (m *Model) PrevSymbol() int {
	return m.prevSymbol
}
