package wallet

import (
	"encoding/hex"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// FingerprintSize is the number of BLAKE3 bytes kept in a fingerprint.
const FingerprintSize = 8

// Fingerprint returns the hex-encoded first 8 bytes of BLAKE3(seed).
func Fingerprint(seed []byte) string {
	sum := crypto.Hash(seed)
	return hex.EncodeToString(sum[:FingerprintSize])
}

// MnemonicFingerprint fingerprints the passphrase-less seed of m. It identifies
// a phrase without revealing it and does not depend on any passphrase the user
// later applies.
func MnemonicFingerprint(m *mnemonic.Mnemonic) string {
	seed := m.DeriveSeed("")
	defer zeroBytes(seed)
	return Fingerprint(seed)
}
