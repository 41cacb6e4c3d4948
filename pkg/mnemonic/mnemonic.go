// Package mnemonic implements BIP-39 mnemonic phrases: encoding entropy as
// words, validating phrases and their checksums, and deriving 64-byte seeds.
package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// WordCount is the number of words in a phrase.
type WordCount int

// Supported phrase lengths.
const (
	Words12 WordCount = 12
	Words15 WordCount = 15
	Words18 WordCount = 18
	Words21 WordCount = 21
	Words24 WordCount = 24
)

// Parallel tables: word count, checksum bits and entropy bits per phrase size.
var (
	wordCounts   = [...]int{12, 15, 18, 21, 24}
	checksumBits = [...]int{4, 5, 6, 7, 8}
	entropyBits  = [...]int{128, 160, 192, 224, 256}
)

// EntropyBitsFor returns the entropy length in bits for count, or 0 if count
// is not a supported phrase length.
func EntropyBitsFor(count WordCount) int {
	if i := slices.Index(wordCounts[:], int(count)); i >= 0 {
		return entropyBits[i]
	}
	return 0
}

// ValidWordCount reports whether n is a supported phrase length.
func ValidWordCount(n int) bool {
	return slices.Contains(wordCounts[:], n)
}

// Mnemonic is a parsed or generated phrase. Words and indices never change
// after construction; checksum validity is computed on first use and cached.
type Mnemonic struct {
	phrase   string
	words    []string
	indices  []int
	wordList *WordList

	checksumOnce  sync.Once
	checksumValid bool
}

// Parse builds a Mnemonic from a phrase. When wl is nil the word list is
// auto-detected, falling back to English. Irregular whitespace is collapsed
// and the canonical phrase is re-joined with the word list's separator.
//
// The checksum is not verified here; see IsValidChecksum.
func Parse(phrase string, wl *WordList) (*Mnemonic, error) {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: phrase is empty", ErrInvalidArgument)
	}
	if wl == nil {
		detected, ok := detectWords(words)
		if !ok {
			detected = English
		}
		wl = detected
	}
	if !ValidWordCount(len(words)) {
		return nil, fmt.Errorf("%w: got %d words, want 12, 15, 18, 21 or 24", ErrInvalidFormat, len(words))
	}
	indices, err := wl.ToIndices(words)
	if err != nil {
		return nil, err
	}
	return &Mnemonic{
		phrase:   strings.Join(words, string(wl.Space())),
		words:    words,
		indices:  indices,
		wordList: wl,
	}, nil
}

// FromEntropy encodes entropy of 16, 20, 24, 28 or 32 bytes as a phrase.
// A nil wl selects English.
func FromEntropy(entropy []byte, wl *WordList) (*Mnemonic, error) {
	if wl == nil {
		wl = English
	}
	i := slices.Index(entropyBits[:], len(entropy)*8)
	if i < 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 20, 24, 28 or 32", ErrInvalidEntropyLength, len(entropy))
	}

	sum := sha256.Sum256(entropy)
	var w bitWriter
	w.Write(entropy, len(entropy)*8)
	w.Write(sum[:], checksumBits[i])
	indices, err := w.Indices()
	if err != nil {
		return nil, fmt.Errorf("pack indices: %w", err)
	}

	m := &Mnemonic{
		phrase:   wl.GetSentence(indices),
		words:    wl.GetWords(indices),
		indices:  indices,
		wordList: wl,
	}
	m.checksumOnce.Do(func() { m.checksumValid = true })
	return m, nil
}

// Generate creates a phrase of count words from system entropy.
func Generate(wl *WordList, count WordCount) (*Mnemonic, error) {
	return GenerateFrom(SystemEntropy{}, wl, count)
}

// GenerateFrom creates a phrase of count words from src.
func GenerateFrom(src EntropySource, wl *WordList, count WordCount) (*Mnemonic, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil entropy source", ErrInvalidArgument)
	}
	bits := EntropyBitsFor(count)
	if bits == 0 {
		return nil, fmt.Errorf("%w: %d, want 12, 15, 18, 21 or 24", ErrInvalidWordCount, count)
	}
	entropy, err := src.Entropy(bits / 8)
	if err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return FromEntropy(entropy, wl)
}

// IsValidChecksum reports whether the trailing checksum bits match the
// SHA-256 of the leading entropy bits. A mismatch is not an error.
func (m *Mnemonic) IsValidChecksum() bool {
	m.checksumOnce.Do(func() {
		m.checksumValid = m.computeChecksum()
	})
	return m.checksumValid
}

func (m *Mnemonic) computeChecksum() bool {
	i := slices.Index(wordCounts[:], len(m.indices))
	if i < 0 {
		return false
	}
	var w bitWriter
	w.WriteBits(m.wordList.ToBits(m.indices), entropyBits[i])
	sum := sha256.Sum256(w.Bytes())
	w.Write(sum[:], checksumBits[i])
	got, err := w.Indices()
	if err != nil {
		return false
	}
	return slices.Equal(got, m.indices)
}

// Entropy returns the entropy bits carried by the phrase, checksum stripped.
// The result is meaningful only when IsValidChecksum is true.
func (m *Mnemonic) Entropy() []byte {
	i := slices.Index(wordCounts[:], len(m.indices))
	var w bitWriter
	w.WriteBits(m.wordList.ToBits(m.indices), entropyBits[i])
	return w.Bytes()
}

// Words returns a copy of the phrase words.
func (m *Mnemonic) Words() []string {
	return slices.Clone(m.words)
}

// Indices returns a copy of the word indices.
func (m *Mnemonic) Indices() []int {
	return slices.Clone(m.indices)
}

// WordList returns the catalog the indices were resolved against.
func (m *Mnemonic) WordList() *WordList {
	return m.wordList
}

// WordCount returns the number of words.
func (m *Mnemonic) WordCount() WordCount {
	return WordCount(len(m.words))
}

// DeriveSeed returns the 64-byte seed for the phrase and passphrase.
func (m *Mnemonic) DeriveSeed(passphrase string) []byte {
	return DeriveSeed(m.phrase, passphrase)
}

// String returns the canonical phrase.
func (m *Mnemonic) String() string {
	return m.phrase
}
