// Package crypto provides the hashing and Schnorr signing primitives used to
// fingerprint phrases and sign messages with keys derived from them.
package crypto

import "github.com/zeebo/blake3"

// messagePrefix separates signed messages from any other BLAKE3 input.
const messagePrefix = "Klingnet Signed Message:\n"

// Hash computes a BLAKE3-256 hash of the input data.
func Hash(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// MessageHash returns the digest that SignMessage signs for msg.
func MessageHash(msg []byte) [32]byte {
	h := blake3.New()
	h.Write([]byte(messagePrefix))
	h.Write(msg)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
