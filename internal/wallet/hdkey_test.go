package wallet

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

const testPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func testMnemonic(t *testing.T) *mnemonic.Mnemonic {
	t.Helper()
	m, err := mnemonic.Parse(testPhrase, mnemonic.English)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return m
}

// testMaster returns the master key of the BIP-39 test vector:
// "abandon" x11 + "about" with passphrase "TREZOR".
func testMaster(t *testing.T) *HDKey {
	t.Helper()
	master, err := MasterKeyFromMnemonic(testMnemonic(t), "TREZOR")
	if err != nil {
		t.Fatalf("MasterKeyFromMnemonic() error: %v", err)
	}
	return master
}

func TestMasterKeyFromMnemonic_KnownVector(t *testing.T) {
	master := testMaster(t)

	want := "xprv9s21ZrQH143K3h3fDYiay8mocZ3afhfULfb5GX8kCBdno77K4HiA15Tg23wpbeF1pLfs1c5SPmYHrEpTuuRhxMwvKDwqdKiGJS9XFKzUsAF"
	if got := master.String(); got != want {
		t.Errorf("master xprv = %s, want %s", got, want)
	}
	if !master.IsPrivate() {
		t.Error("master key should be private")
	}
	if master.Depth() != 0 {
		t.Errorf("master key depth = %d, want 0", master.Depth())
	}
	if len(master.PrivateKeyBytes()) != 32 {
		t.Errorf("private key length = %d, want 32", len(master.PrivateKeyBytes()))
	}
	if len(master.PublicKeyBytes()) != 33 {
		t.Errorf("public key length = %d, want 33", len(master.PublicKeyBytes()))
	}
}

func TestNewMasterKey_InvalidSeedLength(t *testing.T) {
	tests := []struct {
		name string
		seed []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 32)},
		{"too long", make([]byte, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMasterKey(tt.seed); err == nil {
				t.Error("expected error for invalid seed length")
			}
		})
	}
}

func TestVerifyPublicKey(t *testing.T) {
	master := testMaster(t)
	if err := master.VerifyPublicKey(); err != nil {
		t.Fatalf("VerifyPublicKey() error: %v", err)
	}

	account, err := master.DeriveAccount(0)
	if err != nil {
		t.Fatalf("DeriveAccount() error: %v", err)
	}
	if err := account.VerifyPublicKey(); err != nil {
		t.Errorf("account VerifyPublicKey() error: %v", err)
	}

	if err := master.Neuter().VerifyPublicKey(); err == nil {
		t.Error("VerifyPublicKey() on a public-only key should fail")
	}
}

func TestDeriveChild(t *testing.T) {
	master := testMaster(t)

	child, err := master.DeriveChild(0)
	if err != nil {
		t.Fatalf("DeriveChild(0) error: %v", err)
	}
	if child.Depth() != 1 {
		t.Errorf("child depth = %d, want 1", child.Depth())
	}
	if !child.IsPrivate() {
		t.Error("child derived from private key should be private")
	}

	child2, err := master.DeriveChild(1)
	if err != nil {
		t.Fatalf("DeriveChild(1) error: %v", err)
	}
	if bytes.Equal(child.PrivateKeyBytes(), child2.PrivateKeyBytes()) {
		t.Error("different indices should produce different keys")
	}
}

func TestDerivePath(t *testing.T) {
	master := testMaster(t)

	c1, _ := master.DeriveChild(PurposeBIP44)
	c2, _ := c1.DeriveChild(CoinTypeKlingnet)
	c3, _ := c2.DeriveChild(bip32.FirstHardenedChild)

	account, err := master.DeriveAccount(0)
	if err != nil {
		t.Fatalf("DeriveAccount() error: %v", err)
	}
	if !bytes.Equal(c3.PrivateKeyBytes(), account.PrivateKeyBytes()) {
		t.Error("DeriveAccount should equal sequential DeriveChild")
	}
	if account.Depth() != 3 {
		t.Errorf("account depth = %d, want 3", account.Depth())
	}

	indices, err := ParsePath(DefaultPath)
	if err != nil {
		t.Fatalf("ParsePath() error: %v", err)
	}
	viaPath, err := master.DerivePath(indices...)
	if err != nil {
		t.Fatalf("DerivePath() error: %v", err)
	}
	if viaPath.String() != account.String() {
		t.Error("DefaultPath should derive account 0")
	}
}

func TestParsePath(t *testing.T) {
	h := uint32(bip32.FirstHardenedChild)
	tests := []struct {
		path string
		want []uint32
	}{
		{"m", []uint32{}},
		{"m/0", []uint32{0}},
		{"m/44'/8888'/0'", []uint32{h + 44, h + 8888, h}},
		{"m/44h/0h/1/2", []uint32{h + 44, h, 1, 2}},
		{" m/7 ", []uint32{7}},
	}
	for _, tt := range tests {
		got, err := ParsePath(tt.path)
		if err != nil {
			t.Fatalf("ParsePath(%q) error: %v", tt.path, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ParsePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	for _, bad := range []string{"", "44'/0'", "m/", "m/x", "m/-1", "m/2147483648", "m/1''"} {
		if _, err := ParsePath(bad); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParsePath(%q) error = %v, want ErrInvalidPath", bad, err)
		}
	}
}

func TestNeuter_DeriveChild(t *testing.T) {
	master := testMaster(t)

	pub := master.Neuter()
	if pub.IsPrivate() || pub.PrivateKeyBytes() != nil {
		t.Error("neutered key should not carry a private key")
	}
	if !bytes.Equal(master.PublicKeyBytes(), pub.PublicKeyBytes()) {
		t.Error("neutered key should have same public key")
	}

	privChild, _ := master.DeriveChild(0)
	pubChild, err := pub.DeriveChild(0)
	if err != nil {
		t.Fatalf("DeriveChild from public key error: %v", err)
	}
	// BIP-32: public derivation matches the neutered private child.
	if !bytes.Equal(privChild.Neuter().PublicKeyBytes(), pubChild.PublicKeyBytes()) {
		t.Error("public derivation should match neutered private derivation")
	}
	if pubChild.String()[:4] != "xpub" {
		t.Errorf("public child String() = %s, want xpub prefix", pubChild.String())
	}
}

func TestSigner(t *testing.T) {
	account, err := testMaster(t).DeriveAccount(0)
	if err != nil {
		t.Fatalf("DeriveAccount() error: %v", err)
	}

	signer, err := account.Signer()
	if err != nil {
		t.Fatalf("Signer() error: %v", err)
	}
	sig, err := signer.SignMessage([]byte("test message"))
	if err != nil {
		t.Fatalf("SignMessage() error: %v", err)
	}
	if !crypto.VerifyMessage([]byte("test message"), sig, account.PublicKeyBytes()) {
		t.Error("signature from HD-derived key should verify")
	}

	if _, err := account.Neuter().Signer(); err == nil {
		t.Error("Signer() from public key should return error")
	}
}

func TestHDKey_Fingerprint(t *testing.T) {
	master := testMaster(t)
	fp := master.Fingerprint()
	if len(fp) != 2*FingerprintSize {
		t.Fatalf("Fingerprint() = %q, want %d hex chars", fp, 2*FingerprintSize)
	}
	if master.Neuter().Fingerprint() != fp {
		t.Error("fingerprint should depend only on the public key")
	}
}
