package mnemonic

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestDeriveSeed_KnownVector(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), English)
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	if m.String() != zeroPhrase {
		t.Fatalf("String() = %q, want %q", m.String(), zeroPhrase)
	}

	seed := m.DeriveSeed("TREZOR")
	want, _ := hex.DecodeString("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	if !bytes.Equal(seed, want) {
		t.Errorf("seed = %x, want %x", seed, want)
	}
}

func TestDeriveSeed_Deterministic(t *testing.T) {
	m, err := Parse(zeroPhrase, nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	seed1 := m.DeriveSeed("test")
	seed2 := m.DeriveSeed("test")
	if len(seed1) != SeedSize {
		t.Fatalf("seed length = %d, want %d", len(seed1), SeedSize)
	}
	if !bytes.Equal(seed1, seed2) {
		t.Error("same phrase + passphrase should produce same seed")
	}
}

func TestDeriveSeed_PassphraseChanges(t *testing.T) {
	m, err := Parse(zeroPhrase, nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if bytes.Equal(m.DeriveSeed(""), m.DeriveSeed("my passphrase")) {
		t.Error("different passphrases should produce different seeds")
	}
}

func TestDeriveSeed_MatchesGoBIP39(t *testing.T) {
	phrases := []string{
		zeroPhrase,
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	}
	for _, p := range phrases {
		for _, pass := range []string{"", "TREZOR", "correct horse battery staple"} {
			want := bip39.NewSeed(p, pass)
			if got := DeriveSeed(p, pass); !bytes.Equal(got, want) {
				t.Errorf("DeriveSeed(%q, %q) = %x, want %x", p, pass, got, want)
			}
		}
	}
}

func TestDeriveSeed_NormalizesPassphrase(t *testing.T) {
	composed := "caf\u00e9 \u30ac"
	decomposed := "cafe\u0301 \u30ab\u3099"
	if !bytes.Equal(DeriveSeed(zeroPhrase, composed), DeriveSeed(zeroPhrase, decomposed)) {
		t.Error("composed and decomposed passphrases should derive the same seed")
	}
}

func TestDeriveSeed_UsesCanonicalPhrase(t *testing.T) {
	// Irregular whitespace is collapsed by Parse, so the seed matches the
	// canonical phrase.
	m, err := Parse("abandon  abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon\tabout", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !bytes.Equal(m.DeriveSeed("TREZOR"), DeriveSeed(zeroPhrase, "TREZOR")) {
		t.Error("seed should be derived from the canonical phrase")
	}
}

func TestDeriveSeed_JapaneseVector(t *testing.T) {
	m, err := FromEntropy(make([]byte, 16), Japanese)
	if err != nil {
		t.Fatalf("FromEntropy() error: %v", err)
	}
	phrase := strings.Repeat("\u3042\u3044\u3053\u304f\u3057\u3093\u3000", 11) + "\u3042\u304a\u305e\u3089"
	if m.String() != phrase {
		t.Fatalf("String() = %q, want %q", m.String(), phrase)
	}
	passphrase := "\u334d\u30ac\u30d0\u30f4\u30a1\u3071\u3070\u3050\u309e\u3061\u3062\u5341\u4eba\u5341\u8272"
	want, _ := hex.DecodeString("a262d6fb6122ecf45be09c50492b31f92e9beb7d9a845987a02cefda57a15f9c467a17872029a9e92299b5cbdf306e3a0ee620245cbd508959b6cb7ca637bd55")

	tests := []struct {
		name string
		n    Normalizer
	}{
		{"host", HostNormalizer{}},
		{"table", TableNormalizer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveSeed(tt.n, m.String(), passphrase); !bytes.Equal(got, want) {
				t.Errorf("seed = %x, want %x", got, want)
			}
		})
	}
	if got := m.DeriveSeed(passphrase); !bytes.Equal(got, want) {
		t.Errorf("DeriveSeed() = %x, want %x", got, want)
	}
}
