package acrypt

import (
	"bytes"
	"testing"
)

func TestEmptyPayloadRoundTrip(t *testing.T) {
	c := New(Options{})
	enc, err := c.Encode(nil)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	dec, err := New(Options{}).Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if len(dec) != 0 {
		t.Fatalf("Decode(Encode(nil)) = %v; want empty", dec)
	}
}

func TestKeyedRoundTrip(t *testing.T) {
	opts := Options{Key: []byte("correct horse battery staple"), Pin: 4242, IVLength: 8}
	payload := []byte("the quick brown fox jumps over the lazy dog")

	enc, err := New(opts).Encode(payload)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	dec, err := New(opts).Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if !bytes.Equal(dec, payload) {
		t.Fatalf("Decode(Encode(payload)) = %q; want %q", dec, payload)
	}
}

func TestWrongKeyYieldsEmptyNotError(t *testing.T) {
	right := Options{Key: []byte("right-key"), Pin: 99, IVLength: 4}
	wrong := Options{Key: []byte("wrong-key"), Pin: 99, IVLength: 4}

	enc, err := New(right).Encode([]byte("payload under the right key"))
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	dec, err := New(wrong).Decode(enc)
	if err != nil {
		t.Fatalf("Decode with wrong key returned error %s; want nil error", err)
	}
	if len(dec) != 0 {
		t.Fatalf("Decode with wrong key = %v; want empty", dec)
	}
}

func TestWrongPinYieldsEmptyNotError(t *testing.T) {
	opts := Options{Pin: 1, IVLength: 12}
	otherOpts := Options{Pin: 2, IVLength: 12}

	enc, err := New(opts).Encode([]byte("some payload"))
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	dec, err := New(otherOpts).Decode(enc)
	if err != nil {
		t.Fatalf("Decode with wrong pin returned error %s; want nil error", err)
	}
	if len(dec) != 0 {
		t.Fatalf("Decode with wrong pin = %v; want empty", dec)
	}
}

func TestHighlyRepetitiveInputCompressesSmall(t *testing.T) {
	payload := bytes.Repeat([]byte{0x41}, 4096)
	c := New(Options{CodingStep: 4096})
	enc, err := c.Encode(payload)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if len(enc) >= 200 {
		t.Fatalf("compressed size = %d bytes for 4096 repeated bytes; want < 200", len(enc))
	}
	dec, err := New(Options{CodingStep: 4096}).Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if !bytes.Equal(dec, payload) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(dec), len(payload))
	}
}

func TestLZWImprovesRatioOnRepetitiveInput(t *testing.T) {
	payload := bytes.Repeat([]byte("abcabcabcabc"), 512)
	opts := Options{}

	plain, err := New(opts).Encode(payload)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	viaLZW, err := New(opts).LZWEncode(payload)
	if err != nil {
		t.Fatalf("LZWEncode: %s", err)
	}
	if len(plain) >= len(payload) || len(viaLZW) >= len(payload) {
		t.Fatalf("not both codings shrank a 6144-byte, 3-byte-period input: plain=%d lzw=%d", len(plain), len(viaLZW))
	}
	if len(viaLZW) >= len(plain) {
		t.Fatalf("LZW output = %d bytes; want fewer than plain output's %d bytes", len(viaLZW), len(plain))
	}

	dec, err := New(opts).LZWDecode(viaLZW)
	if err != nil {
		t.Fatalf("LZWDecode: %s", err)
	}
	if !bytes.Equal(dec, payload) {
		t.Fatalf("LZW round trip mismatch: got %d bytes, want %d", len(dec), len(payload))
	}
}

func TestCrossIVLengthMismatchYieldsEmpty(t *testing.T) {
	opts := Options{Pin: 7, IVLength: 8}
	otherOpts := Options{Pin: 7, IVLength: 16}

	enc, err := New(opts).Encode([]byte("payload"))
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	dec, err := New(otherOpts).Decode(enc)
	if err != nil {
		t.Fatalf("Decode with mismatched IV length returned error %s; want nil error", err)
	}
	if len(dec) != 0 {
		t.Fatalf("Decode with mismatched IV length = %v; want empty", dec)
	}
}

func TestPresetRoundTrip(t *testing.T) {
	for _, preset := range []Preset{PresetFast, PresetDefault, PresetSecure} {
		opts := preset.Apply(Options{Key: []byte("preset-key"), Pin: 55})
		payload := []byte("preset round trip payload, not especially long")

		enc, err := New(opts).Encode(payload)
		if err != nil {
			t.Fatalf("Encode under preset %+v: %s", preset, err)
		}
		dec, err := New(opts).Decode(enc)
		if err != nil {
			t.Fatalf("Decode under preset %+v: %s", preset, err)
		}
		if !bytes.Equal(dec, payload) {
			t.Fatalf("round trip mismatch under preset %+v: got %q, want %q", preset, dec, payload)
		}
	}
}

func TestStatsReportsSizesAfterEncodeAndDecode(t *testing.T) {
	payload := []byte("stats payload")
	c := New(Options{})

	enc, err := c.Encode(payload)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	st := c.Stats()
	if st.BytesIn != len(payload) {
		t.Fatalf("Stats().BytesIn = %d; want %d", st.BytesIn, len(payload))
	}
	if st.BytesOut != len(enc) {
		t.Fatalf("Stats().BytesOut = %d; want %d", st.BytesOut, len(enc))
	}
	if st.UsedLZW {
		t.Fatalf("Stats().UsedLZW = true for a plain Encode call")
	}

	d := New(Options{})
	if _, err := d.Decode(enc); err != nil {
		t.Fatalf("Decode: %s", err)
	}
	if got := d.Stats().BytesOut; got != len(payload) {
		t.Fatalf("Stats().BytesOut after Decode = %d; want %d", got, len(payload))
	}
}

func TestDecodeOfEmptyInputReturnsDecodeError(t *testing.T) {
	c := New(Options{})
	if _, err := c.Decode(nil); err == nil {
		t.Fatalf("Decode of empty input, too short to prime the decoder, returned nil error")
	}
}
