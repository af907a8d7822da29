package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// frame names the text framing applied to binary output/expected on input.
type frame int

const (
	frameNone frame = iota
	frameHex
	frameBase64
)

func frameFromFlags(hexFlag, base64Flag bool) (frame, error) {
	switch {
	case hexFlag && base64Flag:
		return frameNone, fmt.Errorf("--hex and --base64 are mutually exclusive")
	case hexFlag:
		return frameHex, nil
	case base64Flag:
		return frameBase64, nil
	default:
		return frameNone, nil
	}
}

// encodeFrame renders binary data in the chosen text framing for output. It
// is a no-op for frameNone.
func encodeFrame(f frame, data []byte) []byte {
	switch f {
	case frameHex:
		return []byte(hex.EncodeToString(data))
	case frameBase64:
		return []byte(base64.StdEncoding.EncodeToString(data))
	default:
		return data
	}
}

// decodeFrame reverses encodeFrame on CLI input.
func decodeFrame(f frame, data []byte) ([]byte, error) {
	switch f {
	case frameHex:
		return hex.DecodeString(string(trimSpace(data)))
	case frameBase64:
		return base64.StdEncoding.DecodeString(string(trimSpace(data)))
	default:
		return data, nil
	}
}

// trimSpace strips the trailing newline a shell or editor commonly appends
// to framed text input, without pulling in strings.TrimSpace's full
// Unicode-whitespace behavior for what is otherwise binary-safe input.
func trimSpace(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
