package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

const (
	seedIterations = 2048
	saltPrefix     = "mnemonic"
)

// DeriveSeed computes PBKDF2-HMAC-SHA512(NFKD(phrase), "mnemonic"+NFKD(passphrase))
// with 2048 iterations. Both inputs are normalized first so the seed does not
// depend on how the text was typed or stored.
func DeriveSeed(phrase, passphrase string) []byte {
	return deriveSeed(processNormalizer(), phrase, passphrase)
}

func deriveSeed(n Normalizer, phrase, passphrase string) []byte {
	password := []byte(n.Normalize(phrase))
	salt := []byte(saltPrefix + n.Normalize(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}
