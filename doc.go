// Package acrypt transforms a byte stream into a compressed, lightly
// obfuscated bit stream and back. Obfuscation comes from a known-plaintext
// preamble — derived from a key, a PIN, and an initialization-vector length
// — encoded through the same adaptive arithmetic coder as the payload: any
// deviation in key, PIN, IV length, or coding step at the decoder
// desynchronizes the coder and destroys the output. Compression comes from
// an order-1 adaptive symbol model backed by Fenwick trees, optionally with
// an LZW front end.
//
// This is not a cryptographically secure cipher: there is no
// authentication and no proven indistinguishability. It is not a
// general-purpose archiver, and it is not streaming — Encode and Decode
// hold their entire input and output in memory.
package acrypt
