package mnemonic

import (
	"bytes"
	"encoding/hex"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q) error: %v", s, err)
	}
	return b
}

func TestFromEntropy_KnownVectors(t *testing.T) {
	// Reference vectors from the BIP-39 test suite.
	tests := []struct {
		entropy string
		phrase  string
	}{
		{
			"00000000000000000000000000000000",
			"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		},
		{
			"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
			"legal winner thank year wave sausage worth useful legal winner thank yellow",
		},
		{
			"80808080808080808080808080808080",
			"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
		},
		{
			"ffffffffffffffffffffffffffffffff",
			"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
		},
		{
			"9e885d952ad362caeb4efe34a8e91bd2",
			"ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
		},
		{
			"000000000000000000000000000000000000000000000000",
			strings.Repeat("abandon ", 17) + "agent",
		},
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			strings.Repeat("abandon ", 23) + "art",
		},
		{
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			strings.Repeat("zoo ", 23) + "vote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.entropy[:8], func(t *testing.T) {
			m, err := FromEntropy(mustHex(t, tt.entropy), English)
			if err != nil {
				t.Fatalf("FromEntropy() error: %v", err)
			}
			if m.String() != tt.phrase {
				t.Errorf("String() = %q, want %q", m.String(), tt.phrase)
			}
			if !m.IsValidChecksum() {
				t.Error("generated phrase should have a valid checksum")
			}
		})
	}
}

func TestFromEntropy_MatchesGoBIP39(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		entropy, err := SystemEntropy{}.Entropy(size)
		if err != nil {
			t.Fatalf("Entropy(%d) error: %v", size, err)
		}
		want, err := bip39.NewMnemonic(entropy)
		if err != nil {
			t.Fatalf("bip39.NewMnemonic() error: %v", err)
		}
		m, err := FromEntropy(entropy, nil)
		if err != nil {
			t.Fatalf("FromEntropy() error: %v", err)
		}
		if m.String() != want {
			t.Errorf("%d bytes: String() = %q, want %q", size, m.String(), want)
		}
	}
}

func TestRoundTrip_AllSizes(t *testing.T) {
	for _, wl := range []*WordList{English, Japanese, Korean} {
		for i, size := range []int{16, 20, 24, 28, 32} {
			entropy := bytes.Repeat([]byte{byte(0x11 * (i + 1))}, size)
			m, err := FromEntropy(entropy, wl)
			if err != nil {
				t.Fatalf("FromEntropy(%d bytes, %s) error: %v", size, wl, err)
			}
			if got := len(m.Words()); got != wordCounts[i] {
				t.Errorf("word count = %d, want %d", got, wordCounts[i])
			}

			parsed, err := Parse(m.String(), nil)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", m.String(), err)
			}
			if parsed.WordList() != wl {
				t.Errorf("detected %s, want %s", parsed.WordList(), wl)
			}
			if !slices.Equal(parsed.Indices(), m.Indices()) {
				t.Errorf("Parse indices = %v, want %v", parsed.Indices(), m.Indices())
			}
			if !parsed.IsValidChecksum() {
				t.Error("parsed phrase should have a valid checksum")
			}
			if !bytes.Equal(parsed.Entropy(), entropy) {
				t.Errorf("Entropy() = %x, want %x", parsed.Entropy(), entropy)
			}
		}
	}
}

func TestIsValidChecksum_Mutation(t *testing.T) {
	for _, count := range []WordCount{Words12, Words15, Words18, Words21, Words24} {
		m, err := Generate(English, count)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", count, err)
		}
		if !m.IsValidChecksum() {
			t.Fatalf("generated %d-word phrase should validate", count)
		}

		// Flipping the lowest bit of the last word changes only checksum bits.
		words := m.Words()
		last := m.Indices()[len(words)-1]
		words[len(words)-1] = English.Word(last ^ 1)

		mutated, err := Parse(strings.Join(words, " "), English)
		if err != nil {
			t.Fatalf("Parse(mutated) error: %v", err)
		}
		if mutated.IsValidChecksum() {
			t.Errorf("%d words: mutated phrase should fail checksum", count)
		}
	}
}

func TestIsValidChecksum_KnownInvalid(t *testing.T) {
	m, err := Parse(strings.TrimSpace(strings.Repeat("abandon ", 12)), nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.IsValidChecksum() {
		t.Error("12x abandon should fail checksum")
	}
}

func TestIsValidChecksum_Concurrent(t *testing.T) {
	m, err := Parse("legal winner thank year wave sausage worth useful legal winner thank yellow", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.IsValidChecksum()
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		if !ok {
			t.Errorf("goroutine %d: IsValidChecksum() = false", i)
		}
	}
}

func TestParse_NormalizesWhitespace(t *testing.T) {
	input := "  abandon\tabandon abandon  abandon abandon abandon\nabandon abandon abandon abandon abandon   about  "
	m, err := Parse(input, nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if m.String() != want {
		t.Errorf("String() = %q, want %q", m.String(), want)
	}
	if m.WordList() != English {
		t.Errorf("WordList() = %s, want english", m.WordList())
	}
}

func TestParse_JapaneseSeparator(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), Japanese)
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	if !strings.ContainsRune(m.String(), '\u3000') {
		t.Fatalf("String() = %q, want ideographic space separators", m.String())
	}

	// Typed with ASCII spaces, the canonical form restores the separator.
	parsed, err := Parse(strings.Join(m.Words(), " "), nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if parsed.String() != m.String() {
		t.Errorf("String() = %q, want %q", parsed.String(), m.String())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		wl     *WordList
		want   error
	}{
		{"empty", "", nil, ErrInvalidArgument},
		{"whitespace only", " \t\n ", nil, ErrInvalidArgument},
		{"13 words", strings.TrimSpace(strings.Repeat("abandon ", 13)), nil, ErrInvalidFormat},
		{"single word", "abandon", nil, ErrInvalidFormat},
		{"word in no catalog", strings.TrimSpace(strings.Repeat("abandon ", 11)) + " xyzzy", nil, ErrUnknownWord},
		{"wrong explicit list", strings.TrimSpace(strings.Repeat("abandon ", 11)) + " about", Japanese, ErrUnknownWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.phrase, tt.wl)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("failed Parse() should not return a mnemonic")
			}
		})
	}
}

func TestFromEntropy_InvalidLength(t *testing.T) {
	for _, size := range []int{0, 15, 17, 33, 64} {
		_, err := FromEntropy(make([]byte, size), nil)
		if !errors.Is(err, ErrInvalidEntropyLength) {
			t.Errorf("FromEntropy(%d bytes) error = %v, want ErrInvalidEntropyLength", size, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	m1, err := Generate(nil, Words24)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	m2, err := Generate(nil, Words24)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(m1.Words()) != 24 {
		t.Errorf("word count = %d, want 24", len(m1.Words()))
	}
	if m1.String() == m2.String() {
		t.Error("two generated phrases should not be identical")
	}
	if !bip39.IsMnemonicValid(m1.String()) {
		t.Error("go-bip39 should accept a generated phrase")
	}
}

func TestGenerate_InvalidWordCount(t *testing.T) {
	if _, err := Generate(English, WordCount(13)); !errors.Is(err, ErrInvalidWordCount) {
		t.Errorf("Generate(13) error = %v, want ErrInvalidWordCount", err)
	}
}

func TestGenerateFrom_Reader(t *testing.T) {
	src := ReaderEntropy{Reader: bytes.NewReader(make([]byte, 32))}
	m, err := GenerateFrom(src, English, Words12)
	if err != nil {
		t.Fatalf("GenerateFrom() error: %v", err)
	}
	if want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"; m.String() != want {
		t.Errorf("String() = %q, want %q", m.String(), want)
	}

	short := ReaderEntropy{Reader: bytes.NewReader(make([]byte, 4))}
	if _, err := GenerateFrom(short, English, Words12); err == nil {
		t.Error("GenerateFrom() should fail on a short reader")
	}
	if _, err := GenerateFrom(nil, English, Words12); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GenerateFrom(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestMnemonic_AccessorsReturnCopies(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), English)
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	words := m.Words()
	words[0] = "zoo"
	indices := m.Indices()
	indices[0] = 2047

	if m.Words()[0] != "abandon" || m.Indices()[0] != 0 {
		t.Error("mutating accessor results should not change the mnemonic")
	}
	if m.WordCount() != Words12 {
		t.Errorf("WordCount() = %d, want 12", m.WordCount())
	}
}

func TestEntropyBitsFor(t *testing.T) {
	tests := map[WordCount]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256, 13: 0, 0: 0}
	for count, want := range tests {
		if got := EntropyBitsFor(count); got != want {
			t.Errorf("EntropyBitsFor(%d) = %d, want %d", count, got, want)
		}
	}
}
