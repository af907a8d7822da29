package acrypt

// Stats reports size and shape information about the most recent Encode,
// Decode, LZWEncode, or LZWDecode call on a Coder. It is supplemental
// bookkeeping, not part of the wire format.
type Stats struct {
	// BytesIn is the length of the payload passed to an encode call, or
	// of the compressed buffer passed to a decode call.
	BytesIn int

	// BytesOut is the length of the compressed output for an encode
	// call, or of the recovered payload for a decode call. It is zero
	// after a decode call that hit an AuthMismatch.
	BytesOut int

	// UsedLZW reports whether the call went through the LZW front end.
	UsedLZW bool
}

// Stats returns a copy of the statistics recorded by this Coder's most
// recent Encode/Decode/LZWEncode/LZWDecode call. Calling it before any such
// call returns the zero Stats.
func (c *Coder) Stats() Stats {
	return c.lastStats
}
