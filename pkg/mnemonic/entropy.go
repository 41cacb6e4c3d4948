package mnemonic

import (
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
)

// EntropySource supplies n unpredictable bytes on demand.
type EntropySource interface {
	Entropy(n int) ([]byte, error)
}

// SystemEntropy reads from the operating system CSPRNG.
type SystemEntropy struct{}

// Entropy implements EntropySource.
func (SystemEntropy) Entropy(n int) ([]byte, error) {
	b, err := bip39.NewEntropy(n * 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntropyLength, err)
	}
	return b, nil
}

// ReaderEntropy adapts an io.Reader, such as a hardware or remote RNG stream.
type ReaderEntropy struct {
	Reader io.Reader
}

// Entropy implements EntropySource.
func (r ReaderEntropy) Entropy(n int) ([]byte, error) {
	if r.Reader == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrInvalidArgument)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.Reader, b); err != nil {
		return nil, fmt.Errorf("read %d bytes: %w", n, err)
	}
	return b, nil
}
