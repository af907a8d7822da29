package arith_test

import (
	"testing"

	"github.com/thinknlive/ACrypt/arith"
	"github.com/thinknlive/ACrypt/bitio"
	"github.com/thinknlive/ACrypt/model"
)

func encodeAll(t *testing.T, data []byte, step int) []byte {
	t.Helper()
	m, err := model.New(step)
	if err != nil {
		t.Fatalf("model.New: %s", err)
	}
	sink := bitio.NewSink()
	enc := arith.NewEncoder(sink)
	for _, b := range data {
		enc.EncodeSymbol(m.CurrentTable(), int(b))
		if err := m.Update(int(b)); err != nil {
			t.Fatalf("Update: %s", err)
		}
	}
	enc.EncodeSymbol(m.CurrentTable(), model.EOF)
	return enc.Finish()
}

func decodeAll(t *testing.T, buf []byte, step int) []byte {
	t.Helper()
	m, err := model.New(step)
	if err != nil {
		t.Fatalf("model.New: %s", err)
	}
	src := bitio.NewSource(buf)
	dec, err := arith.NewDecoder(src)
	if err != nil {
		t.Fatalf("NewDecoder: %s", err)
	}
	var out []byte
	for {
		symbol, err := dec.DecodeSymbol(m.CurrentTable())
		if err != nil {
			t.Fatalf("DecodeSymbol: %s", err)
		}
		if symbol == model.EOF {
			break
		}
		out = append(out, byte(symbol))
		if err := m.Update(symbol); err != nil {
			t.Fatalf("Update: %s", err)
		}
	}
	return out
}

func TestRoundTripVariousInputs(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("A"),
		[]byte("Hello, World!"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
	}
	for i, data := range cases {
		buf := encodeAll(t, data, 256)
		got := decodeAll(t, buf, 256)
		if string(got) != string(data) {
			t.Fatalf("case %d: round trip = %q; want %q", i, got, data)
		}
	}
}

func TestRepetitiveInputCompressesWell(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = 0x41
	}
	buf := encodeAll(t, data, 4096)
	if len(buf) >= 200 {
		t.Fatalf("encoded length = %d; want < 200 for highly repetitive input", len(buf))
	}
	got := decodeAll(t, buf, 4096)
	if string(got) != string(data) {
		t.Fatalf("round trip mismatch for repetitive input")
	}
}

func TestNonemptyInputProducesNonemptyOutput(t *testing.T) {
	buf := encodeAll(t, []byte("x"), 256)
	if len(buf) == 0 {
		t.Fatalf("encoded length = 0 for nonempty input")
	}
}
