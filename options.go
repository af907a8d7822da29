package acrypt

import "github.com/thinknlive/ACrypt/model"

// Options configures a Coder. All fields are optional; the zero Options
// value means "no key preamble, no PIN-derived PRNG seed, no IV preamble,
// default coding step."
type Options struct {
	// Key is arbitrary secret byte material. Empty means no key
	// preamble is encoded or expected.
	Key []byte

	// Pin, combined with IVLength > 0, seeds the PRNG used to generate
	// the IV preamble bytes. Zero means no PIN-derived seed.
	Pin uint32

	// IVLength is the number of PRNG-derived IV bytes to encode/expect
	// as a preamble before the key preamble. Zero means no IV preamble.
	IVLength int

	// CodingStep is the amount added to a symbol's frequency count on
	// each Model.Update. Zero or negative is treated as
	// model.DefaultCodingStep.
	CodingStep int

	// Logger, if non-nil, receives debug tracing of preamble state
	// transitions. Nil (the default) means no tracing.
	Logger Logger
}

// Logger is the subset of *log.Logger that acrypt needs for optional debug
// tracing; satisfied by the standard library's *log.Logger.
type Logger interface {
	Output(calldepth int, s string) error
}

// Preset bundles an IVLength/CodingStep combination for common use; it
// never sets Key or Pin, which remain caller-supplied secrets.
type Preset struct {
	IVLength   int
	CodingStep int
}

var (
	// PresetFast favors throughput over preamble entropy: no IV, a
	// large coding step for fast adaptation on repetitive input.
	PresetFast = Preset{IVLength: 0, CodingStep: 4096}

	// PresetDefault matches the system's default coding step with no
	// IV preamble.
	PresetDefault = Preset{IVLength: 0, CodingStep: model.DefaultCodingStep}

	// PresetSecure adds a 16-byte PRNG-derived IV preamble (takes effect
	// only when a nonzero Pin or a non-empty Key seeds the PRNG) and a
	// small coding step.
	PresetSecure = Preset{IVLength: 16, CodingStep: 64}
)

// Apply returns opts with IVLength and CodingStep overridden by the preset,
// leaving Key, Pin, and Logger untouched.
func (p Preset) Apply(opts Options) Options {
	opts.IVLength = p.IVLength
	opts.CodingStep = p.CodingStep
	return opts
}
