package wallet

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// BIP-44 derivation path constants.
// Full path: m/44'/CoinType'/account'/change/index
const (
	// PurposeBIP44 is the BIP-44 purpose field (hardened).
	PurposeBIP44 = bip32.FirstHardenedChild + 44

	// CoinTypeKlingnet is our registered (placeholder) coin type (hardened).
	CoinTypeKlingnet = bip32.FirstHardenedChild + 8888
)

// DefaultPath is the account key path the CLI derives when none is given.
const DefaultPath = "m/44'/8888'/0'"

// ErrInvalidPath is returned by ParsePath for malformed derivation paths.
var ErrInvalidPath = errors.New("invalid derivation path")

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != mnemonic.SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", mnemonic.SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// MasterKeyFromMnemonic derives the BIP-39 seed of m under passphrase and
// returns its master key.
func MasterKeyFromMnemonic(m *mnemonic.Mnemonic, passphrase string) (*HDKey, error) {
	seed := m.DeriveSeed(passphrase)
	defer zeroBytes(seed)
	return NewMasterKey(seed)
}

// DeriveFromMnemonic derives the key at path from the seed of m under
// passphrase. The result has passed VerifyPublicKey.
func DeriveFromMnemonic(m *mnemonic.Mnemonic, passphrase, path string) (*HDKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	master, err := MasterKeyFromMnemonic(m, passphrase)
	if err != nil {
		return nil, err
	}
	key, err := master.DerivePath(indices...)
	if err != nil {
		return nil, err
	}
	if err := key.VerifyPublicKey(); err != nil {
		return nil, fmt.Errorf("derived key failed self-check: %w", err)
	}
	return key, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// DeriveAccount derives the key at m/44'/8888'/account'.
func (k *HDKey) DeriveAccount(account uint32) (*HDKey, error) {
	return k.DerivePath(PurposeBIP44, CoinTypeKlingnet, bip32.FirstHardenedChild+account)
}

// ParsePath parses a path like "m/44'/8888'/0'/0/1". Both ' and h mark
// hardened components. "m" alone yields no indices.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, path)
	}

	indices := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		hardened := strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h")
		if hardened {
			p = p[:len(p)-1]
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || n >= uint64(bip32.FirstHardenedChild) {
			return nil, fmt.Errorf("%w: bad component %q in %q", ErrInvalidPath, p, path)
		}
		idx := uint32(n)
		if hardened {
			idx += bip32.FirstHardenedChild
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	// bip32 Key.Key is 33 bytes with a leading 0x00 for private keys.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	return raw
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	return k.key.PublicKey().Key
}

// VerifyPublicKey recomputes the compressed public key with secp256k1 and
// compares it to the one go-bip32 derived.
func (k *HDKey) VerifyPublicKey() error {
	priv := k.PrivateKeyBytes()
	if priv == nil {
		return errors.New("public-only key has no private scalar to check")
	}
	want, err := crypto.CompressedPublicKey(priv)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, k.PublicKeyBytes()) {
		return fmt.Errorf("public key mismatch: bip32 %x, secp256k1 %x", k.PublicKeyBytes(), want)
	}
	return nil
}

// Signer returns a Schnorr signer from this HD key's private key.
// Returns error if this is a public-only key.
func (k *HDKey) Signer() (*crypto.PrivateKey, error) {
	priv := k.PrivateKeyBytes()
	if priv == nil {
		return nil, fmt.Errorf("cannot create signer from public key")
	}
	return crypto.PrivateKeyFromBytes(priv)
}

// Fingerprint returns the BLAKE3 fingerprint of the compressed public key.
func (k *HDKey) Fingerprint() string {
	return Fingerprint(k.PublicKeyBytes())
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Neuter returns a public-key-only copy (for watch-only wallets).
func (k *HDKey) Neuter() *HDKey {
	return &HDKey{key: k.key.PublicKey()}
}

// String returns the Base58 extended key (xprv or xpub).
func (k *HDKey) String() string {
	return k.key.String()
}
